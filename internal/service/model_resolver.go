package service

import (
	"github.com/a2lab/schreibtrainer/config"
	"github.com/a2lab/schreibtrainer/internal/dto"
)

// Models is the allow-list of OpenRouter model ids the UI may request.
var Models = []dto.ModelInfo{
	{ID: "openai/gpt-5-chat", Label: "OpenAI GPT-5 Chat"},
	{ID: "openai/gpt-5-mini", Label: "OpenAI GPT-5 Mini"},
	{ID: "openai/gpt-5-nano", Label: "OpenAI GPT-5 Nano"},
	{ID: "openai/o4-mini-high", Label: "OpenAI o4 Mini High"},
	{ID: "openai/o4-mini", Label: "OpenAI o4 Mini"},
	{ID: "openai/o3-pro", Label: "OpenAI o3 Pro"},
	{ID: "openai/o3", Label: "OpenAI o3"},
	{ID: "openai/gpt-4o-mini", Label: "OpenAI GPT-4o Mini"},
	{ID: "openai/gpt-4.1", Label: "OpenAI GPT-4.1"},
	{ID: "openai/gpt-4.1-mini", Label: "OpenAI GPT-4.1 Mini"},
	{ID: "openai/gpt-4.1-nano", Label: "OpenAI GPT-4.1 Nano"},
}

// ModelResolverService picks the model id to use for a request. Requested
// ids outside the allow-list are silently dropped in favor of the configured
// default, then the first allow-listed entry. Resolve never fails; an empty
// result tells the caller to take the offline fallback path.
type ModelResolverService interface {
	Resolve(requested string) string
	List() []dto.ModelInfo
}

type modelResolverService struct {
	allowed      map[string]struct{}
	defaultModel string
	first        string
}

func NewModelResolverService(cfg *config.Config) ModelResolverService {
	allowed := make(map[string]struct{}, len(Models))
	for _, m := range Models {
		allowed[m.ID] = struct{}{}
	}
	first := ""
	if len(Models) > 0 {
		first = Models[0].ID
	}
	return &modelResolverService{
		allowed:      allowed,
		defaultModel: cfg.OpenRouter.DefaultModel,
		first:        first,
	}
}

func (s *modelResolverService) Resolve(requested string) string {
	if requested != "" {
		if _, ok := s.allowed[requested]; ok {
			return requested
		}
	}
	if s.defaultModel != "" {
		return s.defaultModel
	}
	return s.first
}

func (s *modelResolverService) List() []dto.ModelInfo {
	return Models
}
