package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/a2lab/schreibtrainer/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTaskTeil1WithoutTopic(t *testing.T) {
	text := MockTask(1, "")
	assert.True(t, strings.HasPrefix(text, "Sie sind im Urlaub und wollen eine Woche länger bleiben."))
	assert.NotContains(t, text, "(Thema:")
	assert.Contains(t, text, "Schreiben Sie 20-30 Wörter.")
}

func TestMockTaskInterpolatesTopic(t *testing.T) {
	text := MockTask(1, "Urlaub in Italien")
	assert.Contains(t, text, "länger bleiben (Thema: Urlaub in Italien).")

	text = MockTask(2, "Firma")
	assert.Contains(t, text, "Sie sind neu in der Firma (Thema: Firma).")
	assert.Contains(t, text, "Schreiben Sie 30-40 Wörter.")
}

func TestMockTaskIsDeterministic(t *testing.T) {
	assert.Equal(t, MockTask(1, ""), MockTask(1, ""))
	assert.Equal(t, MockTask(2, "x"), MockTask(2, "x"))
}

func TestMockEvaluationFixedScores(t *testing.T) {
	e := MockEvaluation()
	assert.Equal(t, dto.ScoreMap{"Inhalt": 72, "Grammatik": 65, "Wortschatz": 70, "Form": 78}, e.Scores)
	require.NotNil(t, e.Overall)
	assert.Equal(t, 71.0, *e.Overall)
	require.Len(t, e.Mistakes, 1)
	assert.Equal(t, "ich hat", e.Mistakes[0].Text)
	assert.Equal(t, "ich habe", e.Mistakes[0].Fix)
	assert.Len(t, e.SuggestionsA2, 2)
	assert.Len(t, e.SuggestionsB1, 1)
	require.Len(t, e.Glossary, 1)
	assert.Equal(t, "Termin", e.Glossary[0].De)
}

func TestMockLexVerbTableShape(t *testing.T) {
	payload := MockLex(LexModeVerb, "gehen")
	verb, ok := payload.(dto.VerbResult)
	require.True(t, ok)
	assert.Equal(t, "gehen", verb.Infinitive)
	assert.Equal(t, "to go", verb.MeaningEn)

	raw, err := json.Marshal(verb)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	table, ok := decoded["table"].(map[string]any)
	require.True(t, ok)
	for _, tense := range []string{"Präsens", "Präteritum", "Perfekt", "Plusquamperfekt", "Konjunktiv I", "Konjunktiv II"} {
		forms, ok := table[tense].(map[string]any)
		require.True(t, ok, "missing tense %s", tense)
		for _, person := range []string{"ich", "du", "er/sie/es", "wir", "ihr", "sie/Sie"} {
			assert.Contains(t, forms, person, "tense %s missing person %s", tense, person)
		}
	}
	imperativ, ok := table["Imperativ"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "geh!", imperativ["du"])
	assert.Equal(t, "geht!", imperativ["ihr"])
	assert.Equal(t, "Gehen Sie!", imperativ["Sie"])
	assert.Equal(t, "gehend", table["Partizip I"])
	assert.Equal(t, "gegangen", table["Partizip II"])
}

func TestMockLexIgnoresInputText(t *testing.T) {
	// Same fixed payload regardless of the lookup text.
	assert.Equal(t, MockLex(LexModeVerb, "laufen"), MockLex(LexModeVerb, "schwimmen"))
	assert.Equal(t, MockLex(LexModeGetInfinitive, "lief"), MockLex(LexModeGetInfinitive, "schwamm"))
	assert.Equal(t, "Hallo! (offline mock)", MockLex(LexModeChat, "anything"))
}

func TestMockLexPerMode(t *testing.T) {
	dict, ok := MockLex(LexModeDict, "").(dto.DictResult)
	require.True(t, ok)
	assert.Equal(t, "Beispiel", dict.Headword)

	dict, ok = MockLex(LexModeDict, "Haus").(dto.DictResult)
	require.True(t, ok)
	assert.Equal(t, "Haus", dict.Headword)

	syn, ok := MockLex(LexModeSynonym, "Muster").(dto.ThesaurusResult)
	require.True(t, ok)
	assert.Equal(t, "Muster", syn.Headword)
	require.Len(t, syn.Items, 1)
	assert.Equal(t, "Probe", syn.Items[0].Word)

	ende, ok := MockLex(LexModeTranslateEnDe, "example").(dto.TranslationResult)
	require.True(t, ok)
	assert.Equal(t, "en", ende.Source)
	assert.Equal(t, "de", ende.Target)
	assert.Equal(t, "Beispiel", ende.Translation)

	deen, ok := MockLex(LexModeTranslateDeEn, "Beispiel").(dto.TranslationResult)
	require.True(t, ok)
	assert.Equal(t, "example", deen.Translation)

	unknown, ok := MockLex(LexMode("declension"), "Haus").(dto.UnknownModeResult)
	require.True(t, ok)
	assert.Equal(t, "unknown mode", unknown.Note)
}

func TestOutcomeNote(t *testing.T) {
	assert.Empty(t, Succeeded().Note())
	assert.Equal(t, "Mocked (no API key/model)", FellBack("no API key/model").Note())
	assert.Equal(t, "Mocked (timeout/network)", FellBack("timeout/network").Note())
}
