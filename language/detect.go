package language

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// linguaLanguages maps the catalog codes to lingua languages.
var linguaLanguages = map[string]lingua.Language{
	"en": lingua.English,
	"es": lingua.Spanish,
	"ru": lingua.Russian,
	"zh": lingua.Chinese,
	"fr": lingua.French,
	"de": lingua.German,
	"it": lingua.Italian,
	"ar": lingua.Arabic,
	"hi": lingua.Hindi,
	"ja": lingua.Japanese,
	"ko": lingua.Korean,
	"ur": lingua.Urdu,
}

// minDetectRunes is the shortest input worth running detection on.
const minDetectRunes = 3

// Detector guesses which catalog language a text is written in.
// The underlying models load lazily on first use.
type Detector struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector restricted to the catalog languages.
func NewDetector() *Detector {
	return &Detector{}
}

func (d *Detector) init() {
	langs := make([]lingua.Language, 0, len(catalog))
	for _, opt := range catalog {
		if l, ok := linguaLanguages[opt.Code]; ok {
			langs = append(langs, l)
		}
	}
	d.detector = lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		WithMinimumRelativeDistance(0.1).
		Build()
}

// Detect returns the catalog code of the language text is written in.
// ok is false when the text is too short or the result is ambiguous.
func (d *Detector) Detect(text string) (code string, ok bool) {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minDetectRunes {
		return "", false
	}

	d.once.Do(d.init)

	lang, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return "", false
	}

	code = strings.ToLower(lang.IsoCode639_1().String())
	if !Known(code) {
		return "", false
	}
	return code, true
}
