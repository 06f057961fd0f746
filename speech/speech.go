// Package speech wraps the host speech capabilities: speech-to-text for
// capturing source text and text-to-speech for reading translations aloud.
//
// Both capabilities are optional. Callers check Availability before use;
// recognition reports results through callbacks rather than blocking.
package speech

// Availability tags whether a host capability can be used.
type Availability int

const (
	Unavailable Availability = iota
	Available
)

func (a Availability) String() string {
	if a == Available {
		return "available"
	}
	return "unavailable"
}

// RecognizerConfig configures one recognition run.
type RecognizerConfig struct {
	Locale         string `json:"locale"`
	Continuous     bool   `json:"continuous"`
	InterimResults bool   `json:"interimResults"`
}

// Result is an incremental recognition result. Segments holds every
// pending segment of the utterance, in order.
type Result struct {
	Utterance string   `json:"utterance"`
	Segments  []string `json:"segments"`
	Final     bool     `json:"final"`
}

// Recognizer is a host speech-to-text capability.
type Recognizer interface {
	Availability() Availability

	// Configure applies cfg to the next Start.
	Configure(cfg RecognizerConfig)

	// Start begins capturing an utterance. Callbacks for it carry the
	// given utterance ID.
	Start(utterance string) error

	// Stop ends the current capture. The host may still report OnEnd.
	Stop()

	// OnResult registers a callback for partial and final results.
	OnResult(fn func(Result))

	// OnEnd registers a callback for the end of an utterance.
	OnEnd(fn func(utterance string))
}

// Synthesizer is a host text-to-speech capability.
type Synthesizer interface {
	Availability() Availability
	Speak(text, locale string)
	CancelAll()
}

// Notifier surfaces a message to the user.
type Notifier interface {
	Notify(message string)
}
