package service

import (
	"fmt"
	"strings"
)

// Base templates the composers build on. These are also seeded into the
// prompt_templates table at startup for operator inspection.
const GenTemplate = `Suppose that you are a strict A2 Goethe examiner

You must answer me in english, except when you send me task (task must in german)

Now you have 2 Task:

- Give me task when I send (Teil_x)_(Topic) (if no (Topic) then randomize the topic) with this form:

+ if Teil 1:

<Task context, send SMS for something>

<3 requirements>

<Schreiben Sie 20-30 Wörter. Schreiben Sie zu allen Punkten.>

for example:

Sie sind im Urlaub und wollen eine Woche länger bleiben. Schreiben Sie Ihrem Freund Lukas eine SMS:

- Erklären Sie ihm, dass Sie länger bleiben.
- Schreiben Sie, warum.
- Nennen Sie Ihr neues Ankunftsdatum und die Uhrzeit.

Schreiben Sie 20-30 Wörter. Schreiben Sie zu allen Punkten.

+ if Teil 2:

<Task context, send E-Mail for something>

<3 requirements>

<Schreiben Sie 30-40 Wörter. Schreiben Sie zu allen Punkten.>

for example:

Sie sind neu in der Firma und eine Kollegin, Frau König, möchte Sie besser kennenlernen. Sie hat Sie heute in ein Restaurant eingeladen. Schreiben Sie Frau König eine E-Mail:

- Bedanken Sie sich und sagen Sie, dass Sie heute nicht kommen können.
- Schlagen Sie einen anderen Tag vor.
- Fragen Sie nach dem Weg zu dem Restaurant.

Schreiben Sie 30-40 Wörter. Schreiben Sie zu allen drei Punkten.

You must answer me in english, except when you send me task (task must in german)
`

const EvalTemplate = `rate in different criteria like A2-geothe level, give me score (0-100) for each criteria, the overall score, also with corrected version, spot where I wrote wrong, and some suggestion for A2 and B1 level. If there is some suggestion word (german word), then give me the english translation too.`

// ComposeGeneratePrompt builds the user prompt requesting one German task
// for the given Teil. An empty topic asks the examiner to randomize.
func ComposeGeneratePrompt(teil int, topic string) string {
	t := strings.TrimSpace(topic)
	if t == "" {
		t = "RANDOM"
	}
	return fmt.Sprintf(`%s

Now generate for request: (Teil_%d)_%s
Remember: Output the TASK **in German only** (no English).`, GenTemplate, teil, t)
}

// ComposeEvaluationPrompt builds the strict-JSON evaluation request. The
// listed field set is the external contract the normalizer parses against.
func ComposeEvaluationPrompt(taskText, userAnswer string) string {
	return fmt.Sprintf(`You must answer me in english. You are a strict A2 Goethe examiner.

%s

Task (German):
%s

Student answer (German):
%s

Return a JSON object with this structure ONLY:
{
  "scores": { "Inhalt": number, "Grammatik": number, "Wortschatz": number, "Form": number },
  "overall": number,                         // 0-100 overall score (you compute)
  "corrected": string,                       // corrected version of the student's text (A2 level)
  "mistakes": [                              // list specific mistakes with short explanations
    { "text": "original snippet", "explain": "what is wrong", "fix": "fixed snippet" }
  ],
  "suggestionsA2": [ "tip 1", "tip 2" ],
  "suggestionsB1": [ "tip 1", "tip 2" ],
  "glossary": [                              // suggested words with EN translation
    { "de": "Wort", "en": "word" }
  ],
  "feedback": "feedback"
}`, EvalTemplate, taskText, userAnswer)
}

// LexMode tags one of the dictionary/grammar lookup kinds.
type LexMode string

const (
	LexModeChat            LexMode = "chat"
	LexModeDict            LexMode = "dict"
	LexModeVerb            LexMode = "verb"
	LexModeExampleSentence LexMode = "example_sentence"
	LexModeTranslateEnDe   LexMode = "translate_en_de"
	LexModeTranslateDeEn   LexMode = "translate_de_en"
	LexModeSynonym         LexMode = "synonym"
	LexModeAntonym         LexMode = "antonym"
	LexModeGetInfinitive   LexMode = "get_infinitive"
)

const lexBaseSystem = "You are a bilingual German↔English dictionary, grammar tutor, and strict formatter. " +
	"Always be accurate. Never include unsafe content."

// Per-mode JSON format instructions. Field names and nesting are contract.
var lexInstructions = map[LexMode]string{
	LexModeDict: `
Return a JSON object with:
{
  "headword": "…",
  "senses": [
    { "meaningEn": "…", "pos": "noun|verb|adj|adv|prep|…", "examples": ["de → en", "…"] }
  ]
}
Explain only via the JSON fields; do not add extra keys.`,
	LexModeVerb: `
Given a German verb (any form), return JSON with its infinitive, an English meaning, and conjugations:
{
  "infinitive": "…",
  "meaningEn": "…",
  "table": {
    "Präsens":     {"ich":"…","du":"…","er/sie/es":"…","wir":"…","ihr":"…","sie/Sie":"…"},
    "Präteritum":  {"ich":"…","du":"…","er/sie/es":"…","wir":"…","ihr":"…","sie/Sie":"…"},
    "Perfekt":     {"ich":"…","du":"…","er/sie/es":"…","wir":"…","ihr":"…","sie/Sie":"…"},
    "Plusquamperfekt":{"ich":"…","du":"…","er/sie/es":"…","wir":"…","ihr":"…","sie/Sie":"…"},
    "Konjunktiv I":{"ich":"…","du":"…","er/sie/es":"…","wir":"…","ihr":"…","sie/Sie":"…"},
    "Konjunktiv II":{"ich":"…","du":"…","er/sie/es":"…","wir":"…","ihr":"…","sie/Sie":"…"},
    "Imperativ":   {"du":"…","ihr":"…","Sie":"…"},
    "Partizip I":  "…",
    "Partizip II": "…"
  }
}
Use standard, taught forms.`,
	LexModeExampleSentence: `
Return JSON:
{ "headword": "…", "sentences": [{"de":"…","en":"…"}] }
Make 3–5 simple A2/B1 examples.`,
	LexModeTranslateEnDe: `
Translate EN→DE. Return JSON:
{ "source":"en", "target":"de", "translation":"…", "alternatives":["…","…"], "notes":"(short tips if useful)" }`,
	LexModeTranslateDeEn: `
Translate DE→EN. Return JSON:
{ "source":"de", "target":"en", "translation":"…", "alternatives":["…","…"], "notes":"(short tips if useful)" }`,
	LexModeSynonym: `
Return at most 5 synonyms. JSON:
{ "headword":"…", "items":[{"word":"…","example":{"de":"…","en":"…"}}] }`,
	LexModeAntonym: `
Return at most 5 antonyms. JSON:
{ "headword":"…", "items":[{"word":"…","example":{"de":"…","en":"…"}}] }`,
	LexModeGetInfinitive: `
If input is a German verb (any form), return JSON:
{ "infinitive":"…", "meaningEn":"…"}`,
}

// ComposeLexMessages builds the system/user message pair for one lookup and
// reports whether a JSON object (true) or free text (false) is expected.
// Chat is the only free-text mode. Composition never fails: an unknown mode
// gets the generic JSON framing and is resolved to the "unknown mode"
// placeholder at normalization time.
func ComposeLexMessages(mode LexMode, text string) ([]ChatMessage, bool) {
	clean := strings.TrimSpace(text)

	if mode == LexModeChat {
		if clean == "" {
			clean = "Hallo!"
		}
		return []ChatMessage{
			{Role: "system", Content: lexBaseSystem + " Be concise. If user writes German, answer in German; if English, answer in English."},
			{Role: "user", Content: clean},
		}, false
	}

	return []ChatMessage{
		{Role: "system", Content: lexBaseSystem + " Respond with a single JSON object only. No prose outside JSON."},
		{Role: "user", Content: fmt.Sprintf("Mode: %s\nInput: %s\n\n%s", mode, clean, lexInstructions[mode])},
	}, true
}
