package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/a2lab/schreibtrainer/internal/dto"
	"github.com/a2lab/schreibtrainer/internal/model"
	"github.com/a2lab/schreibtrainer/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	lexHistoryDefaultLimit = 50
	lexHistoryMaxLimit     = 200
)

// LexService answers dictionary/grammar lookups and keeps a log of them.
type LexService interface {
	Lookup(ctx context.Context, req dto.LexRequest) (*dto.LexResponse, error)
	History(mode, q string, limit int) ([]dto.LexHistoryItem, error)
	Clear(mode string) (int64, error)
}

type lexService struct {
	lexRepo  repository.LexLogRepository
	resolver ModelResolverService
	llm      OpenRouterService
}

func NewLexService(lexRepo repository.LexLogRepository, resolver ModelResolverService, llm OpenRouterService) LexService {
	return &lexService{lexRepo: lexRepo, resolver: resolver, llm: llm}
}

// parseLexPayload checks the raw model output against the mode's schema.
// Every JSON mode has its own typed payload; chat passes raw text through.
func parseLexPayload(mode LexMode, raw string) (any, error) {
	var target any
	switch mode {
	case LexModeDict:
		target = &dto.DictResult{}
	case LexModeVerb:
		target = &dto.VerbResult{}
	case LexModeExampleSentence:
		target = &dto.ExampleSentenceResult{}
	case LexModeTranslateEnDe, LexModeTranslateDeEn:
		target = &dto.TranslationResult{}
	case LexModeSynonym, LexModeAntonym:
		target = &dto.ThesaurusResult{}
	case LexModeGetInfinitive:
		target = &dto.InfinitiveResult{}
	default:
		return nil, fmt.Errorf("unknown lex mode %q", mode)
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return nil, err
	}
	return target, nil
}

// Lookup composes the request for the mode, queries the model (or the
// offline mock when no credential, no model, or any provider/parse failure)
// and logs the result. An empty mode means chat; unknown modes resolve to
// the placeholder payload rather than an error.
func (s *lexService) Lookup(ctx context.Context, req dto.LexRequest) (*dto.LexResponse, error) {
	mode := LexMode(req.Mode)
	if mode == "" {
		mode = LexModeChat
	}
	modelID := s.resolver.Resolve(req.Model)
	log.Info().Str("mode", string(mode)).Str("model", modelID).Msg("Lex lookup")

	data, outcome := s.requestLookup(ctx, mode, req.Text, modelID)

	resultJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize lookup result: %w", err)
	}
	entry := model.LexLog{
		Mode:   string(mode),
		Text:   req.Text,
		Result: string(resultJSON),
		Model:  modelID,
	}
	if err := s.lexRepo.Create(&entry); err != nil {
		return nil, fmt.Errorf("failed to store lookup log: %w", err)
	}

	resp := &dto.LexResponse{Data: data}
	if outcome.FellBack {
		resp.Note = "mock"
	}
	return resp, nil
}

func (s *lexService) requestLookup(ctx context.Context, mode LexMode, text, modelID string) (any, Outcome) {
	messages, jsonMode := ComposeLexMessages(mode, text)

	if !s.llm.Available() || modelID == "" {
		return MockLex(mode, text), FellBack("no API key/model")
	}
	if _, known := lexInstructions[mode]; !known && mode != LexModeChat {
		// Unknown mode never goes to the network; placeholder straight away.
		return MockLex(mode, text), FellBack("unknown mode")
	}

	content, err := s.llm.ChatCompletion(ctx, modelID, messages, jsonMode, LookupTimeout)
	if err != nil {
		return MockLex(mode, text), FellBack("timeout/network")
	}
	if !jsonMode {
		return content, Succeeded()
	}

	parsed, err := parseLexPayload(mode, content)
	if err != nil {
		log.Warn().Err(err).Str("mode", string(mode)).Msg("Lex response did not match mode schema")
		return MockLex(mode, text), FellBack("unparseable response")
	}
	return parsed, Succeeded()
}

func (s *lexService) History(mode, q string, limit int) ([]dto.LexHistoryItem, error) {
	if limit <= 0 {
		limit = lexHistoryDefaultLimit
	}
	if limit > lexHistoryMaxLimit {
		limit = lexHistoryMaxLimit
	}

	logs, err := s.lexRepo.Find(mode, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookup logs: %w", err)
	}

	items := make([]dto.LexHistoryItem, 0, len(logs))
	for _, l := range logs {
		var resultObj any
		if err := json.Unmarshal([]byte(l.Result), &resultObj); err != nil {
			resultObj = nil
		}
		items = append(items, dto.LexHistoryItem{
			ID:        l.ID,
			Mode:      l.Mode,
			Text:      l.Text,
			Result:    l.Result,
			Model:     l.Model,
			CreatedAt: l.CreatedAt,
			ResultObj: resultObj,
		})
	}
	return items, nil
}

func (s *lexService) Clear(mode string) (int64, error) {
	deleted, err := s.lexRepo.DeleteByMode(mode)
	if err != nil {
		return 0, fmt.Errorf("failed to clear lookup history: %w", err)
	}
	return deleted, nil
}
