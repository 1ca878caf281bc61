package service

import (
	"fmt"
	"strings"

	"github.com/a2lab/schreibtrainer/internal/dto"
)

// Outcome says whether a pipeline step produced real provider output or
// substituted the offline fallback, and why. Callers surface FellBack via
// the response's _note field; tests assert on the typed value.
type Outcome struct {
	FellBack bool
	Reason   string
}

func Succeeded() Outcome {
	return Outcome{}
}

func FellBack(reason string) Outcome {
	return Outcome{FellBack: true, Reason: reason}
}

// Note renders the _note marker the UI shows when data was mocked.
func (o Outcome) Note() string {
	if !o.FellBack {
		return ""
	}
	return "Mocked (" + o.Reason + ")"
}

// MockTask is the fixed offline task per Teil. A non-empty topic is
// interpolated into the template; everything else is static.
func MockTask(teil int, topic string) string {
	t := ""
	if s := strings.TrimSpace(topic); s != "" {
		t = fmt.Sprintf(" (Thema: %s)", s)
	}
	if teil == 1 {
		return strings.Join([]string{
			fmt.Sprintf("Sie sind im Urlaub und wollen eine Woche länger bleiben%s. Schreiben Sie Ihrem Freund/ Ihrer Freundin eine SMS:", t),
			"- Erklären Sie, dass Sie länger bleiben.",
			"- Nennen Sie einen Grund.",
			"- Nennen Sie Ihr neues Ankunftsdatum und die Uhrzeit.",
			"",
			"Schreiben Sie 20-30 Wörter. Schreiben Sie zu allen Punkten.",
		}, "\n")
	}
	return strings.Join([]string{
		fmt.Sprintf("Sie sind neu in der Firma%s. Schreiben Sie Ihrer Kollegin/ Ihrem Kollegen eine E-Mail:", t),
		"- Bedanken Sie sich für die Einladung.",
		"- Sagen Sie, dass Sie heute nicht kommen können.",
		"- Schlagen Sie einen anderen Tag vor.",
		"",
		"Schreiben Sie 30-40 Wörter. Schreiben Sie zu allen Punkten.",
	}, "\n")
}

// MockEvaluation is the fixed offline evaluation result.
func MockEvaluation() dto.Evaluation {
	overall := 71.0
	return dto.Evaluation{
		Scores:    dto.ScoreMap{"Inhalt": 72, "Grammatik": 65, "Wortschatz": 70, "Form": 78},
		Overall:   &overall,
		Corrected: "Korrigierte Version…",
		Mistakes: []dto.Mistake{
			{Text: "ich hat", Explain: "Verbform falsch (haben)", Fix: "ich habe"},
		},
		SuggestionsA2: []string{"Nutzen Sie einfache Sätze.", "Achten Sie auf Artikel (der/die/das)."},
		SuggestionsB1: []string{"Verbinden Sie Sätze mit Konnektoren (weil, dass, obwohl)."},
		Glossary:      []dto.GlossaryEntry{{De: "Termin", En: "appointment"}},
		Feedback:      "Gute Basis, verbessern Sie Verbformen und Wortstellung.",
	}
}

// MockLex is the fixed offline payload per lookup mode, typed per mode so
// the offline path exercises the same shapes as real output. Chat returns a
// one-line sentence; unknown modes get the placeholder object.
func MockLex(mode LexMode, text string) any {
	switch mode {
	case LexModeChat:
		return "Hallo! (offline mock)"
	case LexModeVerb:
		return dto.VerbResult{
			Infinitive: "gehen",
			MeaningEn:  "to go",
			Table: dto.VerbTable{
				Praesens:        dto.PersonForms{Ich: "gehe", Du: "gehst", ErSieEs: "geht", Wir: "gehen", Ihr: "geht", SieSie: "gehen"},
				Praeteritum:     dto.PersonForms{Ich: "ging", Du: "gingst", ErSieEs: "ging", Wir: "gingen", Ihr: "gingt", SieSie: "gingen"},
				Perfekt:         dto.PersonForms{Ich: "bin gegangen", Du: "bist gegangen", ErSieEs: "ist gegangen", Wir: "sind gegangen", Ihr: "seid gegangen", SieSie: "sind gegangen"},
				Plusquamperfekt: dto.PersonForms{Ich: "war gegangen", Du: "warst gegangen", ErSieEs: "war gegangen", Wir: "waren gegangen", Ihr: "wart gegangen", SieSie: "waren gegangen"},
				KonjunktivI:     dto.PersonForms{Ich: "gehe", Du: "gehest", ErSieEs: "gehe", Wir: "gehen", Ihr: "gehet", SieSie: "gehen"},
				KonjunktivII:    dto.PersonForms{Ich: "ginge", Du: "gingest", ErSieEs: "ginge", Wir: "gingen", Ihr: "ginget", SieSie: "gingen"},
				Imperativ:       dto.ImperativForms{Du: "geh!", Ihr: "geht!", Sie: "Gehen Sie!"},
				PartizipI:       "gehend",
				PartizipII:      "gegangen",
			},
		}
	case LexModeDict:
		headword := strings.TrimSpace(text)
		if headword == "" {
			headword = "Beispiel"
		}
		return dto.DictResult{
			Headword: headword,
			Senses: []dto.DictSense{
				{MeaningEn: "example/sample", Pos: "noun", Examples: []string{"ein Beispiel geben → give an example"}},
			},
		}
	case LexModeSynonym, LexModeAntonym:
		return dto.ThesaurusResult{
			Headword: text,
			Items: []dto.ThesaurusItem{
				{Word: "Probe", Example: dto.SentencePair{De: "Das ist nur eine Probe.", En: "That's just a sample."}},
			},
		}
	case LexModeExampleSentence:
		return dto.ExampleSentenceResult{
			Headword:  text,
			Sentences: []dto.SentencePair{{De: "Das ist ein Beispiel.", En: "This is an example."}},
		}
	case LexModeGetInfinitive:
		return dto.InfinitiveResult{Infinitive: "gehen", MeaningEn: "to go"}
	case LexModeTranslateEnDe:
		return dto.TranslationResult{Source: "en", Target: "de", Translation: "Beispiel", Alternatives: []string{"Muster"}, Notes: ""}
	case LexModeTranslateDeEn:
		return dto.TranslationResult{Source: "de", Target: "en", Translation: "example", Alternatives: []string{"sample"}, Notes: ""}
	}
	return dto.UnknownModeResult{Note: "unknown mode"}
}
