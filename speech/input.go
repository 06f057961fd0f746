package speech

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"go.aimuz.me/medtrans/language"
)

// MsgRecognitionUnsupported is shown when voice input is requested but the
// host has no speech recognition.
const MsgRecognitionUnsupported = "Speech recognition not supported in this browser."

// ErrRecognitionUnavailable is returned by Toggle when the host has no
// speech recognition.
var ErrRecognitionUnavailable = errors.New("speech recognition unavailable")

// Sink receives what the Input adapter captures.
type Sink interface {
	SourceLang() string
	SetSourceText(text string)
	SetRecording(recording bool)
}

// Input drives voice capture into the source text.
type Input struct {
	rec    Recognizer
	sink   Sink
	notify Notifier

	mu      sync.Mutex
	current string // utterance being captured, "" when idle
}

// NewInput creates an Input and subscribes to rec's callbacks.
// rec may be nil when the host has no recognizer at all.
func NewInput(rec Recognizer, sink Sink, notify Notifier) *Input {
	in := &Input{rec: rec, sink: sink, notify: notify}
	if rec != nil {
		rec.OnResult(in.handleResult)
		rec.OnEnd(in.handleEnd)
	}
	return in
}

// Recording reports whether an utterance is being captured.
func (in *Input) Recording() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.current != ""
}

// Toggle starts capture when idle and stops it when recording. Stopping
// works even if the recognizer has since become unavailable.
func (in *Input) Toggle() error {
	in.mu.Lock()
	if in.current != "" {
		id := in.current
		in.current = ""
		in.sink.SetRecording(false)
		in.mu.Unlock()

		in.rec.Stop()
		slog.Debug("speech input stopped", "utterance", id)
		return nil
	}

	if in.rec == nil || in.rec.Availability() != Available {
		in.mu.Unlock()
		in.notify.Notify(MsgRecognitionUnsupported)
		return ErrRecognitionUnavailable
	}

	id := uuid.NewString()
	in.current = id
	in.sink.SetRecording(true)
	cfg := RecognizerConfig{
		Locale:         language.Locale(in.sink.SourceLang()),
		Continuous:     false,
		InterimResults: true,
	}
	in.mu.Unlock()

	in.rec.Configure(cfg)
	if err := in.rec.Start(id); err != nil {
		in.mu.Lock()
		if in.current == id {
			in.current = ""
			in.sink.SetRecording(false)
		}
		in.mu.Unlock()
		return fmt.Errorf("start recognition: %w", err)
	}

	slog.Debug("speech input started", "utterance", id, "locale", cfg.Locale)
	return nil
}

func (in *Input) handleResult(r Result) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if r.Utterance == "" || r.Utterance != in.current {
		return
	}
	in.sink.SetSourceText(strings.Join(r.Segments, ""))
}

func (in *Input) handleEnd(utterance string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	// A stop already cleared the flag, or this is a late end from an
	// earlier utterance.
	if utterance == "" || utterance != in.current {
		return
	}
	in.current = ""
	in.sink.SetRecording(false)
}
