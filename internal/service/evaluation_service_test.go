package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2lab/schreibtrainer/internal/dto"
	"github.com/a2lab/schreibtrainer/internal/model"
	"github.com/a2lab/schreibtrainer/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTask(t *testing.T, db *gorm.DB, teil int) *model.Task {
	t.Helper()
	task := model.Task{Teil: teil, Topic: "random", Prompt: "p", TaskText: MockTask(teil, "")}
	require.NoError(t, db.Create(&task).Error)
	return &task
}

func TestEvaluateUnknownTaskIsNotFound(t *testing.T) {
	db := newTestDB(t)
	cfg := offlineConfig()
	svc := NewEvaluationService(
		repository.NewTaskRepository(db), repository.NewAttemptRepository(db),
		NewModelResolverService(cfg), NewOpenRouterService(cfg),
	)

	_, err := svc.Evaluate(context.Background(), dto.EvaluateRequest{TaskID: 999, UserAnswer: "x"})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	var n int64
	require.NoError(t, db.Model(&model.Attempt{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestEvaluateOfflineUsesMockEvaluation(t *testing.T) {
	db := newTestDB(t)
	task := seedTask(t, db, 1)
	cfg := offlineConfig()
	svc := NewEvaluationService(
		repository.NewTaskRepository(db), repository.NewAttemptRepository(db),
		NewModelResolverService(cfg), NewOpenRouterService(cfg),
	)

	resp, err := svc.Evaluate(context.Background(), dto.EvaluateRequest{TaskID: task.ID, UserAnswer: "ich hat gern"})
	require.NoError(t, err)

	assert.Equal(t, dto.ScoreMap{"Inhalt": 72, "Grammatik": 65, "Wortschatz": 70, "Form": 78}, resp.Scores)
	require.NotNil(t, resp.Evaluation.Overall)
	assert.Equal(t, 71.0, *resp.Evaluation.Overall)
	assert.Equal(t, "ich hat gern", resp.UserAnswer)
	assert.Equal(t, task.ID, resp.TaskID)
	assert.Equal(t, task.TaskText, resp.Task.TaskText)

	// Persisted serialized form parses back to the same structures.
	var stored model.Attempt
	require.NoError(t, db.First(&stored, resp.ID).Error)
	var storedEval dto.Evaluation
	require.NoError(t, json.Unmarshal([]byte(stored.Evaluation), &storedEval))
	assert.Equal(t, resp.Scores, storedEval.Scores)
	var storedScores dto.ScoreMap
	require.NoError(t, json.Unmarshal([]byte(stored.Scores), &storedScores))
	assert.Equal(t, resp.Scores, storedScores)
}

func TestEvaluateComputesMissingOverall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content := `{"scores":{"Inhalt":90,"Grammatik":80,"Wortschatz":85,"Form":86},"corrected":"...","mistakes":[],"suggestionsA2":[],"suggestionsB1":[],"glossary":[],"feedback":"gut"}`
		body := map[string]any{"choices": []any{map[string]any{"message": map[string]any{"content": content}}}}
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	db := newTestDB(t)
	task := seedTask(t, db, 2)
	cfg := onlineConfig(server.URL)
	svc := NewEvaluationService(
		repository.NewTaskRepository(db), repository.NewAttemptRepository(db),
		NewModelResolverService(cfg), NewOpenRouterService(cfg),
	)

	resp, err := svc.Evaluate(context.Background(), dto.EvaluateRequest{TaskID: task.ID, UserAnswer: "Sehr geehrte Frau König"})
	require.NoError(t, err)

	require.NotNil(t, resp.Evaluation.Overall)
	// mean(90,80,85,86) = 85.25 -> 85
	assert.Equal(t, 85.0, *resp.Evaluation.Overall)
	assert.Equal(t, "gut", resp.Evaluation.Feedback)
}

func TestEvaluateFallsBackOnUnparseableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"choices": []any{map[string]any{"message": map[string]any{"content": "Sorry, I cannot produce JSON."}}}}
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	db := newTestDB(t)
	task := seedTask(t, db, 1)
	cfg := onlineConfig(server.URL)
	svc := NewEvaluationService(
		repository.NewTaskRepository(db), repository.NewAttemptRepository(db),
		NewModelResolverService(cfg), NewOpenRouterService(cfg),
	)

	resp, err := svc.Evaluate(context.Background(), dto.EvaluateRequest{TaskID: task.ID, UserAnswer: "x"})
	require.NoError(t, err)
	assert.Equal(t, dto.ScoreMap{"Inhalt": 72, "Grammatik": 65, "Wortschatz": 70, "Form": 78}, resp.Scores)
}
