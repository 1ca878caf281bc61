package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2lab/schreibtrainer/internal/dto"
	"github.com/a2lab/schreibtrainer/internal/model"
	"github.com/a2lab/schreibtrainer/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskServiceOffline(t *testing.T) (TaskService, repository.TaskRepository, func() int64) {
	t.Helper()
	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	cfg := offlineConfig()
	svc := NewTaskService(taskRepo, NewModelResolverService(cfg), NewOpenRouterService(cfg))
	count := func() int64 {
		var n int64
		require.NoError(t, db.Model(&model.Task{}).Count(&n).Error)
		return n
	}
	return svc, taskRepo, count
}

func TestGenerateRejectsInvalidTeilAndPersistsNothing(t *testing.T) {
	svc, _, count := newTaskServiceOffline(t)

	for _, teil := range []int{0, 3, -1, 7} {
		_, err := svc.Generate(context.Background(), dto.GenerateTaskRequest{Teil: teil})
		assert.ErrorIs(t, err, ErrInvalidTeil, "teil=%d", teil)
	}
	assert.Equal(t, int64(0), count())
}

func TestGenerateOfflineUsesMockAndPersists(t *testing.T) {
	svc, taskRepo, count := newTaskServiceOffline(t)

	resp, err := svc.Generate(context.Background(), dto.GenerateTaskRequest{Teil: 1, Topic: ""})
	require.NoError(t, err)

	assert.Equal(t, MockTask(1, ""), resp.TaskText)
	assert.NotContains(t, resp.TaskText, "(Thema:")
	assert.Equal(t, "Mocked (no API key/model)", resp.Note)
	assert.Equal(t, 1, resp.Teil)
	assert.Equal(t, "random", resp.Topic)
	assert.Contains(t, resp.Prompt, "(Teil_1)_RANDOM")
	assert.Equal(t, int64(1), count())

	stored, err := taskRepo.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.TaskText, stored.TaskText)
}

func TestGenerateOfflineTeil2KeepsTopic(t *testing.T) {
	svc, _, _ := newTaskServiceOffline(t)

	resp, err := svc.Generate(context.Background(), dto.GenerateTaskRequest{Teil: 2, Topic: " Einladung "})
	require.NoError(t, err)

	assert.Equal(t, "Einladung", resp.Topic)
	assert.Contains(t, resp.TaskText, "(Thema: Einladung)")
	assert.Contains(t, resp.Prompt, "(Teil_2)_Einladung")
}

func TestGenerateUsesProviderTaskText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Schreiben Sie Ihrem Nachbarn eine SMS."}}]}`))
	}))
	defer server.Close()

	db := newTestDB(t)
	cfg := onlineConfig(server.URL)
	svc := NewTaskService(repository.NewTaskRepository(db), NewModelResolverService(cfg), NewOpenRouterService(cfg))

	resp, err := svc.Generate(context.Background(), dto.GenerateTaskRequest{Teil: 1, Topic: "Nachbarn"})
	require.NoError(t, err)
	assert.Equal(t, "Schreiben Sie Ihrem Nachbarn eine SMS.", resp.TaskText)
	assert.Empty(t, resp.Note)
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	db := newTestDB(t)
	cfg := onlineConfig(server.URL)
	svc := NewTaskService(repository.NewTaskRepository(db), NewModelResolverService(cfg), NewOpenRouterService(cfg))

	resp, err := svc.Generate(context.Background(), dto.GenerateTaskRequest{Teil: 2})
	require.NoError(t, err)
	assert.Equal(t, MockTask(2, ""), resp.TaskText)
	assert.Equal(t, "Mocked (timeout/network)", resp.Note)
}
