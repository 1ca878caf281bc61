package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/a2lab/schreibtrainer/internal/dto"
	"github.com/a2lab/schreibtrainer/internal/model"
	"github.com/a2lab/schreibtrainer/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EvaluationService scores user answers against their task and records the
// attempt.
type EvaluationService interface {
	Evaluate(ctx context.Context, req dto.EvaluateRequest) (*dto.AttemptResponse, error)
}

type evaluationService struct {
	taskRepo    repository.TaskRepository
	attemptRepo repository.AttemptRepository
	resolver    ModelResolverService
	llm         OpenRouterService
}

func NewEvaluationService(
	taskRepo repository.TaskRepository,
	attemptRepo repository.AttemptRepository,
	resolver ModelResolverService,
	llm OpenRouterService,
) EvaluationService {
	return &evaluationService{
		taskRepo:    taskRepo,
		attemptRepo: attemptRepo,
		resolver:    resolver,
		llm:         llm,
	}
}

// Evaluate loads the task, requests a strict-JSON evaluation and persists
// the attempt. Provider failures and unparseable output both degrade to the
// fixed mock evaluation; the overall score is always present (rounded mean
// of the criteria when the model omitted it).
func (s *evaluationService) Evaluate(ctx context.Context, req dto.EvaluateRequest) (*dto.AttemptResponse, error) {
	task, err := s.taskRepo.FindByID(req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task %d: %w", req.TaskID, err)
	}

	prompt := ComposeEvaluationPrompt(task.TaskText, req.UserAnswer)
	modelID := s.resolver.Resolve(req.Model)
	log.Info().Uint("taskId", task.ID).Str("model", modelID).Msg("Evaluating attempt")

	evaluation, outcome := s.requestEvaluation(ctx, modelID, prompt)
	evaluation.EnsureOverall()
	if outcome.FellBack {
		log.Warn().Str("reason", outcome.Reason).Uint("taskId", task.ID).Msg("Evaluation fell back to mock")
	}

	evalJSON, err := json.Marshal(evaluation)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize evaluation: %w", err)
	}
	scoresJSON, err := json.Marshal(evaluation.Scores)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize scores: %w", err)
	}

	attempt := model.Attempt{
		TaskID:     task.ID,
		UserAnswer: req.UserAnswer,
		Evaluation: string(evalJSON),
		Scores:     string(scoresJSON),
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		return nil, fmt.Errorf("failed to store attempt: %w", err)
	}

	resp := dto.AttemptResponse{
		ID:         attempt.ID,
		TaskID:     attempt.TaskID,
		UserAnswer: attempt.UserAnswer,
		Evaluation: evaluation,
		Scores:     evaluation.Scores,
		CreatedAt:  attempt.CreatedAt,
	}
	if err := copier.Copy(&resp.Task, task); err != nil {
		return nil, fmt.Errorf("failed to map task to response: %w", err)
	}
	return &resp, nil
}

func (s *evaluationService) requestEvaluation(ctx context.Context, modelID, prompt string) (dto.Evaluation, Outcome) {
	if !s.llm.Available() || modelID == "" {
		return MockEvaluation(), FellBack("no API key/model")
	}

	messages := []ChatMessage{
		{Role: "system", Content: "Reply with a single JSON object only. No extra text."},
		{Role: "user", Content: prompt},
	}
	content, err := s.llm.ChatCompletion(ctx, modelID, messages, true, EvaluateTimeout)
	if err != nil {
		return MockEvaluation(), FellBack("timeout/network")
	}

	var evaluation dto.Evaluation
	if err := json.Unmarshal([]byte(content), &evaluation); err != nil {
		log.Warn().Err(err).Msg("Evaluation response is not valid JSON")
		return MockEvaluation(), FellBack("unparseable response")
	}
	return evaluation, Succeeded()
}
