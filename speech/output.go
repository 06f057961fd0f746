package speech

import "go.aimuz.me/medtrans/language"

// Output reads text aloud. Missing synthesis is not an error: Speak just
// does nothing.
type Output struct {
	syn Synthesizer
}

// NewOutput creates an Output. syn may be nil.
func NewOutput(syn Synthesizer) *Output {
	return &Output{syn: syn}
}

// Speak cancels any utterance in progress and reads text in the locale of
// the language code. It reports whether speech was started.
func (o *Output) Speak(text, code string) bool {
	if o.syn == nil || o.syn.Availability() != Available {
		return false
	}
	if text == "" {
		return false
	}

	o.syn.CancelAll()
	o.syn.Speak(text, language.Locale(code))
	return true
}
