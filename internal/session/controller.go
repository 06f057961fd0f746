// Package session implements the translation session controller: it owns
// the session state, keeps the selected language pair valid and runs
// translate requests.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/google/uuid"

	"go.aimuz.me/medtrans/backend"
	"go.aimuz.me/medtrans/internal/types"
	"go.aimuz.me/medtrans/language"
)

// MaxSourceUnits bounds the source text, counted in UTF-16 code units.
const MaxSourceUnits = 1000

// Defaults for a new session.
const (
	DefaultSourceLang = "en"
	DefaultTargetLang = "es"
)

// User-facing messages for failed translations.
const (
	MsgTranslateFailed      = "Translate request failed. Check backend."
	msgTranslateErrorPrefix = "Translate error: "
)

// ErrTargetNotPermitted is returned when a target language is not offered
// for the current source language.
var ErrTargetNotPermitted = errors.New("target language not permitted for source")

// Translator performs a translate request.
type Translator interface {
	Translate(ctx context.Context, req backend.Request) (string, error)
}

// Notifier surfaces a message to the user.
type Notifier interface {
	Notify(message string)
}

// Controller owns the session state. All methods are safe for concurrent
// use; each applies its change atomically.
type Controller struct {
	translator Translator
	notify     Notifier

	mu           sync.Mutex
	state        types.SessionState
	onChange     func(types.SessionState)
	onTranslated func(types.Translation)
}

// New creates a Controller with the default language pair and empty texts.
func New(translator Translator, notify Notifier) *Controller {
	return &Controller{
		translator: translator,
		notify:     notify,
		state: types.SessionState{
			SourceLang: DefaultSourceLang,
			TargetLang: DefaultTargetLang,
		},
	}
}

// OnChange registers fn to receive a snapshot after every change.
// It must be called before the controller is shared.
func (c *Controller) OnChange(fn func(types.SessionState)) {
	c.onChange = fn
}

// OnTranslated registers fn to receive every successful translation.
// It must be called before the controller is shared.
func (c *Controller) OnTranslated(fn func(types.Translation)) {
	c.onTranslated = fn
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() types.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SourceLang returns the selected source language.
func (c *Controller) SourceLang() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.SourceLang
}

// TranslatedText returns the last translation.
func (c *Controller) TranslatedText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.TranslatedText
}

// PermittedTargets returns the targets offered for the current source.
func (c *Controller) PermittedTargets() []string {
	return language.PermittedTargets(c.SourceLang())
}

// SetSourceText replaces the source text, truncated to MaxSourceUnits.
func (c *Controller) SetSourceText(text string) {
	c.update(func(s *types.SessionState) bool {
		text = truncateUnits(text, MaxSourceUnits)
		if s.SourceText == text {
			return false
		}
		s.SourceText = text
		return true
	})
}

// ClearSource empties the source text.
func (c *Controller) ClearSource() {
	c.SetSourceText("")
}

// SetSourceLang selects the source language and, when the current target
// is not permitted for it, falls back to its first permitted target (or
// none).
func (c *Controller) SetSourceLang(code string) {
	c.update(func(s *types.SessionState) bool {
		changed := s.SourceLang != code
		s.SourceLang = code
		return repairTarget(s) || changed
	})
}

// SetTargetLang selects the target language. It must be one of the
// permitted targets for the current source.
func (c *Controller) SetTargetLang(code string) error {
	var err error
	c.update(func(s *types.SessionState) bool {
		if !language.IsPermitted(s.SourceLang, code) {
			err = fmt.Errorf("%w: %s→%s", ErrTargetNotPermitted, s.SourceLang, code)
			return false
		}
		if s.TargetLang == code {
			return false
		}
		s.TargetLang = code
		return true
	})
	return err
}

// SwapLanguages exchanges source and target when the reverse pair exists.
// It reports whether the swap happened.
func (c *Controller) SwapLanguages() bool {
	var swapped bool
	c.update(func(s *types.SessionState) bool {
		if s.TargetLang == "" || !language.IsPermitted(s.TargetLang, s.SourceLang) {
			return false
		}
		s.SourceLang, s.TargetLang = s.TargetLang, s.SourceLang
		swapped = true
		return true
	})
	return swapped
}

// SetRecording records whether voice input is active.
func (c *Controller) SetRecording(recording bool) {
	c.update(func(s *types.SessionState) bool {
		if s.IsRecording == recording {
			return false
		}
		s.IsRecording = recording
		return true
	})
}

// Translate sends the source text to the backend and stores the result.
//
// It does nothing when the source text is blank, no target is selected or
// a request is already in flight. Failures are returned and, except for an
// empty backend answer, reported to the user. The translated text is only
// replaced on success.
func (c *Controller) Translate(ctx context.Context) error {
	var req backend.Request
	started := c.update(func(s *types.SessionState) bool {
		if s.IsTranslating || s.TargetLang == "" || strings.TrimSpace(s.SourceText) == "" {
			return false
		}
		s.IsTranslating = true
		req = backend.Request{
			ID:         uuid.NewString(),
			Text:       s.SourceText,
			SourceLang: s.SourceLang,
			TargetLang: s.TargetLang,
		}
		return true
	})
	if !started {
		return nil
	}
	defer c.update(func(s *types.SessionState) bool {
		s.IsTranslating = false
		return true
	})

	text, err := c.translator.Translate(ctx, req)
	if err != nil {
		var apiErr *backend.APIError
		switch {
		case errors.As(err, &apiErr):
			slog.Warn("translate rejected", "id", req.ID, "src", req.SourceLang, "tgt", req.TargetLang, "error", apiErr.Message)
			c.notify.Notify(msgTranslateErrorPrefix + apiErr.Message)
		case errors.Is(err, backend.ErrEmptyResponse):
			slog.Warn("translate returned nothing", "id", req.ID, "error", err)
		default:
			slog.Error("translate request failed", "id", req.ID, "error", err)
			c.notify.Notify(MsgTranslateFailed)
		}
		return fmt.Errorf("translate %s→%s: %w", req.SourceLang, req.TargetLang, err)
	}

	var stale bool
	c.update(func(s *types.SessionState) bool {
		stale = s.SourceText != req.Text || s.SourceLang != req.SourceLang || s.TargetLang != req.TargetLang
		s.TranslatedText = text
		return true
	})
	if stale {
		// The inputs changed while the request was in flight. The result
		// is still shown; the user can translate again.
		slog.Debug("applied translation for outdated inputs", "id", req.ID)
	}

	if c.onTranslated != nil {
		c.onTranslated(types.Translation{
			RequestID:      req.ID,
			SourceLang:     req.SourceLang,
			TargetLang:     req.TargetLang,
			Text:           req.Text,
			TranslatedText: text,
		})
	}
	return nil
}

// update applies fn under the lock and publishes a snapshot when fn
// reports a change.
func (c *Controller) update(fn func(s *types.SessionState) bool) bool {
	c.mu.Lock()
	if !fn(&c.state) {
		c.mu.Unlock()
		return false
	}
	c.state.Version++
	snap := c.state
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
	return true
}

// repairTarget keeps the target within the permitted targets of the
// source. It reports whether the target changed.
func repairTarget(s *types.SessionState) bool {
	targets := language.PermittedTargets(s.SourceLang)
	if slices.Contains(targets, s.TargetLang) {
		return false
	}
	next := ""
	if len(targets) > 0 {
		next = targets[0]
	}
	if s.TargetLang == next {
		return false
	}
	s.TargetLang = next
	return true
}

// truncateUnits cuts s to at most limit UTF-16 code units without splitting
// a surrogate pair.
func truncateUnits(s string, limit int) string {
	units := 0
	for i, r := range s {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if units+n > limit {
			return s[:i]
		}
		units += n
	}
	return s
}
