package dto

// Typed payloads for the lex lookup modes. Field names and nesting (including
// the German tense keys and "er/sie/es" style person keys) are part of the
// external contract: the UI renders these structures by key.

type DictSense struct {
	MeaningEn string   `json:"meaningEn"`
	Pos       string   `json:"pos"`
	Examples  []string `json:"examples"`
}

type DictResult struct {
	Headword string      `json:"headword"`
	Senses   []DictSense `json:"senses"`
}

type PersonForms struct {
	Ich     string `json:"ich"`
	Du      string `json:"du"`
	ErSieEs string `json:"er/sie/es"`
	Wir     string `json:"wir"`
	Ihr     string `json:"ihr"`
	SieSie  string `json:"sie/Sie"`
}

type ImperativForms struct {
	Du  string `json:"du"`
	Ihr string `json:"ihr"`
	Sie string `json:"Sie"`
}

type VerbTable struct {
	Praesens        PersonForms    `json:"Präsens"`
	Praeteritum     PersonForms    `json:"Präteritum"`
	Perfekt         PersonForms    `json:"Perfekt"`
	Plusquamperfekt PersonForms    `json:"Plusquamperfekt"`
	KonjunktivI     PersonForms    `json:"Konjunktiv I"`
	KonjunktivII    PersonForms    `json:"Konjunktiv II"`
	Imperativ       ImperativForms `json:"Imperativ"`
	PartizipI       string         `json:"Partizip I"`
	PartizipII      string         `json:"Partizip II"`
}

type VerbResult struct {
	Infinitive string    `json:"infinitive"`
	MeaningEn  string    `json:"meaningEn"`
	Table      VerbTable `json:"table"`
}

type SentencePair struct {
	De string `json:"de"`
	En string `json:"en"`
}

type ExampleSentenceResult struct {
	Headword  string         `json:"headword"`
	Sentences []SentencePair `json:"sentences"`
}

type TranslationResult struct {
	Source       string   `json:"source"`
	Target       string   `json:"target"`
	Translation  string   `json:"translation"`
	Alternatives []string `json:"alternatives"`
	Notes        string   `json:"notes"`
}

type ThesaurusItem struct {
	Word    string       `json:"word"`
	Example SentencePair `json:"example"`
}

// ThesaurusResult covers both synonym and antonym lookups.
type ThesaurusResult struct {
	Headword string          `json:"headword"`
	Items    []ThesaurusItem `json:"items"`
}

type InfinitiveResult struct {
	Infinitive string `json:"infinitive"`
	MeaningEn  string `json:"meaningEn"`
}

// UnknownModeResult is the placeholder for lookup modes outside the known
// set; requests with such modes are answered, not rejected.
type UnknownModeResult struct {
	Note string `json:"note"`
}
