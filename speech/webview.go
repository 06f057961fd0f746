package speech

import (
	"fmt"
	"sync"
)

// Events sent to the webview, which owns the actual speech APIs.
const (
	EventRecognitionStart = "speech-recognition-start"
	EventRecognitionStop  = "speech-recognition-stop"
	EventSynthesisSpeak   = "speech-synthesis-speak"
	EventSynthesisCancel  = "speech-synthesis-cancel"
)

// Emitter sends a named event to the webview.
type Emitter func(name string, data any)

// RecognitionStart is the payload of EventRecognitionStart.
type RecognitionStart struct {
	Utterance string `json:"utterance"`
	RecognizerConfig
}

// SynthesisSpeak is the payload of EventSynthesisSpeak.
type SynthesisSpeak struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
}

// Capabilities is what the webview reports about its speech support.
type Capabilities struct {
	Recognition bool `json:"recognition"`
	Synthesis   bool `json:"synthesis"`
}

// WebviewRecognizer forwards recognition to the webview and relays the
// results it reports back. It is unavailable until the webview reports
// support.
type WebviewRecognizer struct {
	emit Emitter

	mu        sync.RWMutex
	available bool
	cfg       RecognizerConfig
	onResult  []func(Result)
	onEnd     []func(string)
}

// NewWebviewRecognizer creates a recognizer that emits through emit.
func NewWebviewRecognizer(emit Emitter) *WebviewRecognizer {
	return &WebviewRecognizer{emit: emit}
}

// SetAvailable records whether the webview supports recognition.
func (w *WebviewRecognizer) SetAvailable(ok bool) {
	w.mu.Lock()
	w.available = ok
	w.mu.Unlock()
}

func (w *WebviewRecognizer) Availability() Availability {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.available {
		return Available
	}
	return Unavailable
}

func (w *WebviewRecognizer) Configure(cfg RecognizerConfig) {
	w.mu.Lock()
	w.cfg = cfg
	w.mu.Unlock()
}

func (w *WebviewRecognizer) Start(utterance string) error {
	w.mu.RLock()
	available, cfg := w.available, w.cfg
	w.mu.RUnlock()

	if !available {
		return ErrRecognitionUnavailable
	}
	if utterance == "" {
		return fmt.Errorf("utterance id required")
	}
	w.emit(EventRecognitionStart, RecognitionStart{Utterance: utterance, RecognizerConfig: cfg})
	return nil
}

func (w *WebviewRecognizer) Stop() {
	w.emit(EventRecognitionStop, nil)
}

func (w *WebviewRecognizer) OnResult(fn func(Result)) {
	w.mu.Lock()
	w.onResult = append(w.onResult, fn)
	w.mu.Unlock()
}

func (w *WebviewRecognizer) OnEnd(fn func(string)) {
	w.mu.Lock()
	w.onEnd = append(w.onEnd, fn)
	w.mu.Unlock()
}

// DeliverResult hands a result reported by the webview to subscribers.
func (w *WebviewRecognizer) DeliverResult(r Result) {
	w.mu.RLock()
	fns := w.onResult
	w.mu.RUnlock()

	for _, fn := range fns {
		fn(r)
	}
}

// DeliverEnd hands an end-of-utterance reported by the webview to
// subscribers.
func (w *WebviewRecognizer) DeliverEnd(utterance string) {
	w.mu.RLock()
	fns := w.onEnd
	w.mu.RUnlock()

	for _, fn := range fns {
		fn(utterance)
	}
}

// WebviewSynthesizer forwards speech synthesis to the webview.
type WebviewSynthesizer struct {
	emit Emitter

	mu        sync.RWMutex
	available bool
}

// NewWebviewSynthesizer creates a synthesizer that emits through emit.
func NewWebviewSynthesizer(emit Emitter) *WebviewSynthesizer {
	return &WebviewSynthesizer{emit: emit}
}

// SetAvailable records whether the webview supports synthesis.
func (w *WebviewSynthesizer) SetAvailable(ok bool) {
	w.mu.Lock()
	w.available = ok
	w.mu.Unlock()
}

func (w *WebviewSynthesizer) Availability() Availability {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.available {
		return Available
	}
	return Unavailable
}

func (w *WebviewSynthesizer) Speak(text, locale string) {
	w.emit(EventSynthesisSpeak, SynthesisSpeak{Text: text, Locale: locale})
}

func (w *WebviewSynthesizer) CancelAll() {
	w.emit(EventSynthesisCancel, nil)
}
