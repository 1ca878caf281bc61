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

func newLexServiceOffline(t *testing.T) (LexService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := offlineConfig()
	svc := NewLexService(repository.NewLexLogRepository(db), NewModelResolverService(cfg), NewOpenRouterService(cfg))
	return svc, db
}

func newLexServiceOnline(t *testing.T, handler http.HandlerFunc) (LexService, *gorm.DB) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	db := newTestDB(t)
	cfg := onlineConfig(server.URL)
	svc := NewLexService(repository.NewLexLogRepository(db), NewModelResolverService(cfg), NewOpenRouterService(cfg))
	return svc, db
}

func TestLookupOfflineVerbReturnsMockTableAndLogs(t *testing.T) {
	svc, db := newLexServiceOffline(t)

	resp, err := svc.Lookup(context.Background(), dto.LexRequest{Mode: "verb", Text: "gehen"})
	require.NoError(t, err)
	assert.Equal(t, "mock", resp.Note)

	verb, ok := resp.Data.(dto.VerbResult)
	require.True(t, ok)
	assert.Equal(t, "gehen", verb.Infinitive)
	assert.Equal(t, "gehst", verb.Table.Praesens.Du)
	assert.Equal(t, "sind gegangen", verb.Table.Perfekt.SieSie)

	var logged model.LexLog
	require.NoError(t, db.First(&logged).Error)
	assert.Equal(t, "verb", logged.Mode)
	assert.Equal(t, "gehen", logged.Text)
	assert.Contains(t, logged.Result, "gegangen")
}

func TestLookupEmptyModeDefaultsToChat(t *testing.T) {
	svc, db := newLexServiceOffline(t)

	resp, err := svc.Lookup(context.Background(), dto.LexRequest{Text: "Hallo"})
	require.NoError(t, err)
	assert.Equal(t, "Hallo! (offline mock)", resp.Data)

	var logged model.LexLog
	require.NoError(t, db.First(&logged).Error)
	assert.Equal(t, "chat", logged.Mode)
}

func TestLookupUnknownModeYieldsPlaceholder(t *testing.T) {
	svc, _ := newLexServiceOffline(t)

	resp, err := svc.Lookup(context.Background(), dto.LexRequest{Mode: "declension", Text: "Haus"})
	require.NoError(t, err)
	placeholder, ok := resp.Data.(dto.UnknownModeResult)
	require.True(t, ok)
	assert.Equal(t, "unknown mode", placeholder.Note)
}

func TestLookupParsesTypedPayloadFromProvider(t *testing.T) {
	svc, _ := newLexServiceOnline(t, func(w http.ResponseWriter, r *http.Request) {
		content := `{"infinitive":"laufen","meaningEn":"to run","table":{"Präsens":{"ich":"laufe","du":"läufst","er/sie/es":"läuft","wir":"laufen","ihr":"lauft","sie/Sie":"laufen"},"Imperativ":{"du":"lauf!","ihr":"lauft!","Sie":"Laufen Sie!"},"Partizip I":"laufend","Partizip II":"gelaufen"}}`
		body := map[string]any{"choices": []any{map[string]any{"message": map[string]any{"content": content}}}}
		_ = json.NewEncoder(w).Encode(body)
	})

	resp, err := svc.Lookup(context.Background(), dto.LexRequest{Mode: "verb", Text: "lief"})
	require.NoError(t, err)
	assert.Empty(t, resp.Note)

	verb, ok := resp.Data.(*dto.VerbResult)
	require.True(t, ok)
	assert.Equal(t, "laufen", verb.Infinitive)
	assert.Equal(t, "läufst", verb.Table.Praesens.Du)
}

func TestLookupFallsBackOnSchemaMismatch(t *testing.T) {
	svc, _ := newLexServiceOnline(t, func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"choices": []any{map[string]any{"message": map[string]any{"content": "not a json object"}}}}
		_ = json.NewEncoder(w).Encode(body)
	})

	resp, err := svc.Lookup(context.Background(), dto.LexRequest{Mode: "dict", Text: "Haus"})
	require.NoError(t, err)
	assert.Equal(t, "mock", resp.Note)

	dict, ok := resp.Data.(dto.DictResult)
	require.True(t, ok)
	assert.Equal(t, "Haus", dict.Headword)
}

func TestLookupChatPassesRawTextThrough(t *testing.T) {
	svc, _ := newLexServiceOnline(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		// Chat mode must not request JSON output.
		_, hasFormat := req["response_format"]
		assert.False(t, hasFormat)
		body := map[string]any{"choices": []any{map[string]any{"message": map[string]any{"content": "Mir geht es gut, danke!"}}}}
		_ = json.NewEncoder(w).Encode(body)
	})

	resp, err := svc.Lookup(context.Background(), dto.LexRequest{Mode: "chat", Text: "Wie geht's?"})
	require.NoError(t, err)
	assert.Equal(t, "Mir geht es gut, danke!", resp.Data)
}

func TestLexHistoryFiltersAndLimits(t *testing.T) {
	svc, _ := newLexServiceOffline(t)
	ctx := context.Background()

	_, err := svc.Lookup(ctx, dto.LexRequest{Mode: "verb", Text: "gehen"})
	require.NoError(t, err)
	_, err = svc.Lookup(ctx, dto.LexRequest{Mode: "dict", Text: "Haus"})
	require.NoError(t, err)
	_, err = svc.Lookup(ctx, dto.LexRequest{Mode: "verb", Text: "laufen"})
	require.NoError(t, err)

	items, err := svc.History("verb", "", 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "verb", item.Mode)
		assert.NotNil(t, item.ResultObj)
	}

	// Substring match over the input text.
	items, err = svc.History("", "lauf", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "laufen", items[0].Text)

	// Substring match over the serialized result.
	items, err = svc.History("", "gegangen", 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// "all" disables the mode filter.
	items, err = svc.History("all", "", 0)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	items, err = svc.History("", "", 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestLexClearReportsDeletedCount(t *testing.T) {
	svc, db := newLexServiceOffline(t)
	ctx := context.Background()

	for _, mode := range []string{"verb", "verb", "dict"} {
		_, err := svc.Lookup(ctx, dto.LexRequest{Mode: mode, Text: "x"})
		require.NoError(t, err)
	}

	deleted, err := svc.Clear("verb")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var remaining int64
	require.NoError(t, db.Model(&model.LexLog{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	deleted, err = svc.Clear("")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
