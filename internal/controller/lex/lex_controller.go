package lex

import (
	"net/http"
	"strconv"

	"github.com/a2lab/schreibtrainer/internal/dto"
	"github.com/a2lab/schreibtrainer/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LexController struct {
	lexService service.LexService
}

func NewLexController(lexService service.LexService) *LexController {
	return &LexController{lexService: lexService}
}

// Lookup godoc
// @Summary Dictionary/grammar lookup
// @Description Runs one of the nine lookup modes (chat, dict, verb, example_sentence, translate_en_de, translate_de_en, synonym, antonym, get_infinitive) and logs the result. Provider failures yield the mode's fixed mock payload.
// @Tags Lex
// @Accept json
// @Produce json
// @Param request body dto.LexRequest true "Mode, input text, optional model"
// @Success 200 {object} dto.LexResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lookup [post]
func (c *LexController) Lookup(ctx *gin.Context) {
	var req dto.LexRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.lexService.Lookup(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("mode", req.Mode).Msg("Lookup: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to run lookup", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Ping godoc
// @Summary Lookup route ping
// @Tags Lex
// @Produce json
// @Success 200 {object} map[string]any
// @Router /lookup [get]
func (c *LexController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "route": "/api/v1/lookup", "methods": []string{"POST"}})
}

// GetHistory godoc
// @Summary List lookup logs
// @Description Logs newest-first, optional mode filter and substring search over input and result, limit capped at 200 (default 50).
// @Tags Lex
// @Produce json
// @Param mode query string false "Filter by mode ('all' or empty for no filter)"
// @Param limit query int false "Max items (default 50, cap 200)"
// @Param q query string false "Substring match over input text and result"
// @Success 200 {object} dto.LexHistoryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lookup/history [get]
func (c *LexController) GetHistory(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			limit = val
		}
	}

	items, err := c.lexService.History(ctx.Query("mode"), ctx.Query("q"), limit)
	if err != nil {
		log.Error().Err(err).Msg("Lex GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list lookup history", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.LexHistoryResponse{Items: items})
}

// ClearHistory godoc
// @Summary Delete lookup logs
// @Tags Lex
// @Produce json
// @Param mode query string false "Filter by mode ('all' or empty clears everything)"
// @Success 200 {object} dto.ClearLexHistoryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lookup/history [delete]
func (c *LexController) ClearHistory(ctx *gin.Context) {
	deleted, err := c.lexService.Clear(ctx.Query("mode"))
	if err != nil {
		log.Error().Err(err).Msg("Lex ClearHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to clear lookup history", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.ClearLexHistoryResponse{OK: true, Deleted: deleted})
}
