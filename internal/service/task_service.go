package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/a2lab/schreibtrainer/internal/dto"
	"github.com/a2lab/schreibtrainer/internal/model"
	"github.com/a2lab/schreibtrainer/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// TaskService generates writing tasks and persists them.
type TaskService interface {
	Generate(ctx context.Context, req dto.GenerateTaskRequest) (*dto.TaskResponse, error)
}

type taskService struct {
	taskRepo repository.TaskRepository
	resolver ModelResolverService
	llm      OpenRouterService
}

func NewTaskService(taskRepo repository.TaskRepository, resolver ModelResolverService, llm OpenRouterService) TaskService {
	return &taskService{taskRepo: taskRepo, resolver: resolver, llm: llm}
}

// Generate validates the Teil, asks the model for a task text and stores the
// result. Any provider failure substitutes the fixed offline task; only a
// validation or store failure surfaces as an error, and a rejected request
// persists nothing.
func (s *taskService) Generate(ctx context.Context, req dto.GenerateTaskRequest) (*dto.TaskResponse, error) {
	if req.Teil != 1 && req.Teil != 2 {
		return nil, ErrInvalidTeil
	}

	topic := strings.TrimSpace(req.Topic)
	prompt := ComposeGeneratePrompt(req.Teil, topic)
	modelID := s.resolver.Resolve(req.Model)
	log.Info().Int("teil", req.Teil).Str("model", modelID).Msg("Generating task")

	var taskText string
	outcome := Succeeded()

	if !s.llm.Available() || modelID == "" {
		taskText = MockTask(req.Teil, topic)
		outcome = FellBack("no API key/model")
	} else {
		messages := []ChatMessage{
			{Role: "system", Content: "Follow the instructions exactly. Output only the task text in German."},
			{Role: "user", Content: prompt},
		}
		content, err := s.llm.ChatCompletion(ctx, modelID, messages, false, GenerateTimeout)
		if err != nil {
			log.Warn().Err(err).Int("teil", req.Teil).Msg("Task generation fell back to mock")
			taskText = MockTask(req.Teil, topic)
			outcome = FellBack("timeout/network")
		} else {
			taskText = content
		}
	}

	storedTopic := topic
	if storedTopic == "" {
		storedTopic = "random"
	}
	task := model.Task{
		Teil:     req.Teil,
		Topic:    storedTopic,
		Prompt:   prompt,
		TaskText: taskText,
	}
	if err := s.taskRepo.Create(&task); err != nil {
		return nil, fmt.Errorf("failed to store generated task: %w", err)
	}

	var resp dto.TaskResponse
	if err := copier.Copy(&resp, &task); err != nil {
		return nil, fmt.Errorf("failed to map task to response: %w", err)
	}
	resp.Note = outcome.Note()
	return &resp, nil
}
