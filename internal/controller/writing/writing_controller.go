package writing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/a2lab/schreibtrainer/internal/dto"
	"github.com/a2lab/schreibtrainer/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type WritingController struct {
	taskService       service.TaskService
	evaluationService service.EvaluationService
	historyService    service.HistoryService
	resolver          service.ModelResolverService
}

func NewWritingController(
	taskService service.TaskService,
	evaluationService service.EvaluationService,
	historyService service.HistoryService,
	resolver service.ModelResolverService,
) *WritingController {
	return &WritingController{
		taskService:       taskService,
		evaluationService: evaluationService,
		historyService:    historyService,
		resolver:          resolver,
	}
}

// teilFilter reads an optional ?teil= query; anything other than 1 or 2
// means no filter.
func teilFilter(ctx *gin.Context) *int {
	raw := ctx.Query("teil")
	if raw == "" {
		return nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || (val != 1 && val != 2) {
		return nil
	}
	return &val
}

// Generate godoc
// @Summary Generate a new A2 writing task
// @Description Generates a Teil 1 (SMS) or Teil 2 (email) writing task, falling back to a fixed offline task when the LLM provider is unavailable.
// @Tags Writing
// @Accept json
// @Produce json
// @Param request body dto.GenerateTaskRequest true "Teil (1 or 2), optional topic and model"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid teil"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /generate [post]
func (c *WritingController) Generate(ctx *gin.Context) {
	var req dto.GenerateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	task, err := c.taskService.Generate(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTeil) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Generate: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate task", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// Evaluate godoc
// @Summary Evaluate a user answer for a task
// @Description Scores the answer against the stored task. LLM failures are absorbed into a fixed mock evaluation; the attempt is always recorded.
// @Tags Writing
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Task id, user answer, optional model"
// @Success 200 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /evaluate [post]
func (c *WritingController) Evaluate(ctx *gin.Context) {
	var req dto.EvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	attempt, err := c.evaluationService.Evaluate(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("taskId", req.TaskID).Msg("Evaluate: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to evaluate attempt", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// GetHistory godoc
// @Summary List recorded attempts
// @Description Attempts newest-first with their owning task, capped at 200, optionally filtered by teil.
// @Tags Writing
// @Produce json
// @Param teil query int false "Filter by Teil (1 or 2)"
// @Success 200 {array} dto.HistoryItem
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history [get]
func (c *WritingController) GetHistory(ctx *gin.Context) {
	items, err := c.historyService.List(teilFilter(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list history", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// ClearHistory godoc
// @Summary Delete recorded attempts
// @Description Deletes attempts (optionally one Teil) and prunes tasks left without attempts, atomically.
// @Tags Writing
// @Produce json
// @Param teil query int false "Filter by Teil (1 or 2)"
// @Success 200 {object} dto.ClearHistoryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history [delete]
func (c *WritingController) ClearHistory(ctx *gin.Context) {
	if err := c.historyService.Clear(teilFilter(ctx)); err != nil {
		log.Error().Err(err).Msg("ClearHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to clear history", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.ClearHistoryResponse{OK: true})
}

// ListModels godoc
// @Summary List allow-listed models
// @Tags Writing
// @Produce json
// @Success 200 {array} dto.ModelInfo
// @Router /models [get]
func (c *WritingController) ListModels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.resolver.List())
}
