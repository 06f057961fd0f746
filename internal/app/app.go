// Package app provides the core application service for Wails bindings.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.aimuz.me/medtrans/backend"
	"go.aimuz.me/medtrans/clipboard"
	"go.aimuz.me/medtrans/config"
	"go.aimuz.me/medtrans/history"
	"go.aimuz.me/medtrans/hotkey"
	"go.aimuz.me/medtrans/internal/session"
	"go.aimuz.me/medtrans/internal/types"
	"go.aimuz.me/medtrans/language"
	"go.aimuz.me/medtrans/speech"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// Service provides application functionality bound to Wails.
// This struct focuses on orchestration; business logic lives in sub-components.
type Service struct {
	cfg     *config.Config
	history *history.Store
	hotkey  *hotkey.Manager

	// UI references - set via Init
	app    *application.App
	window application.Window
	emitFn speech.Emitter

	session     *session.Controller
	detector    *language.Detector
	recognizer  *speech.WebviewRecognizer
	synthesizer *speech.WebviewSynthesizer
	input       *speech.Input
	output      *speech.Output

	// Version info (set by caller)
	version string
}

// New creates a new Service. Call Init() after Wails app is created.
func New(version string) *Service {
	return &Service{version: version}
}

// GetVersion returns the application version.
func (s *Service) GetVersion() string {
	return s.version
}

// Init initializes the service with app and window references.
// Must be called after Wails application is created.
func (s *Service) Init(app *application.App, window application.Window) {
	s.app = app
	s.window = window

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		cfg = config.Default()
	}

	s.setup(cfg, s.emitToApp)
	s.setupHotkey()
}

// setup wires the components. It is split from Init so the service can run
// without a Wails application.
func (s *Service) setup(cfg *config.Config, emit speech.Emitter) {
	s.cfg = cfg
	s.emitFn = emit

	client := backend.NewClient(cfg.BackendURL, cfg.RequestTimeout)
	slog.Info("translation backend", "url", client.BaseURL())

	s.session = session.New(client, s)
	s.session.OnChange(func(st types.SessionState) {
		s.emit(EventSessionState, st)
	})

	s.setupHistory(cfg.HistoryLimit)
	s.session.OnTranslated(s.record)

	s.recognizer = speech.NewWebviewRecognizer(s.emit)
	s.synthesizer = speech.NewWebviewSynthesizer(s.emit)
	s.input = speech.NewInput(s.recognizer, s.session, s)
	s.output = speech.NewOutput(s.synthesizer)

	s.detector = language.NewDetector()
}

// Shutdown cleans up resources.
func (s *Service) Shutdown() {
	if s.hotkey != nil {
		s.hotkey.Stop()
	}
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			slog.Error("close history", "error", err)
		}
	}
}

func (s *Service) setupHistory(limit int) {
	h, err := history.New(limit)
	if err != nil {
		slog.Error("init history", "error", err)
		return
	}
	s.history = h
}

func (s *Service) setupHotkey() {
	s.hotkey = hotkey.NewManager(
		hotkey.Binding{Combo: s.cfg.Hotkeys.ShowWindow, Action: s.ShowWindow},
		hotkey.Binding{Combo: s.cfg.Hotkeys.ToggleVoice, Action: func() {
			s.ShowWindow()
			if err := s.ToggleRecording(); err != nil {
				slog.Debug("toggle recording from hotkey", "error", err)
			}
		}},
	)

	if err := s.hotkey.Start(); err != nil {
		slog.Error("start hotkey", "error", err)
	}
}

func (s *Service) record(t types.Translation) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Add(t); err != nil {
		slog.Error("record history", "id", t.RequestID, "error", err)
	}
}

func (s *Service) emitToApp(name string, data any) {
	if s.app != nil {
		s.app.Event.Emit(name, data)
	}
}

// emit is a safe wrapper around the configured emitter.
func (s *Service) emit(name string, data any) {
	if s.emitFn != nil {
		s.emitFn(name, data)
	}
}

// Notify surfaces message to the user as a notice event.
func (s *Service) Notify(message string) {
	slog.Info("notice", "message", message)
	s.emit(EventNotice, types.Notice{
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Window
// ─────────────────────────────────────────────────────────────────────────────

// ShowWindow brings the main window to the front.
func (s *Service) ShowWindow() {
	if s.window != nil {
		s.window.Show()
		s.window.Focus()
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Session
// ─────────────────────────────────────────────────────────────────────────────

// GetState returns the current session snapshot.
func (s *Service) GetState() types.SessionState {
	return s.session.Snapshot()
}

// GetLanguages returns the display catalog.
func (s *Service) GetLanguages() []language.Option {
	return language.Catalog()
}

// GetPermittedTargets returns the target options for the current source.
func (s *Service) GetPermittedTargets() []language.Option {
	return language.TargetOptions(s.session.SourceLang())
}

// SetSourceText replaces the source text.
func (s *Service) SetSourceText(text string) {
	s.session.SetSourceText(text)
}

// ClearSource empties the source text.
func (s *Service) ClearSource() {
	s.session.ClearSource()
}

// SetSourceLanguage changes the source language, repairing the target.
func (s *Service) SetSourceLanguage(code string) {
	s.session.SetSourceLang(code)
}

// SetTargetLanguage changes the target language.
func (s *Service) SetTargetLanguage(code string) error {
	return s.session.SetTargetLang(code)
}

// SwapLanguages exchanges source and target when the reverse pair exists.
func (s *Service) SwapLanguages() bool {
	return s.session.SwapLanguages()
}

// Translate sends the source text to the backend. Failures are reported
// through notice events.
func (s *Service) Translate() {
	if err := s.session.Translate(context.Background()); err != nil {
		slog.Debug("translate", "error", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Speech
// ─────────────────────────────────────────────────────────────────────────────

// ReportCapabilities records which speech APIs the webview supports.
func (s *Service) ReportCapabilities(c speech.Capabilities) {
	s.recognizer.SetAvailable(c.Recognition)
	s.synthesizer.SetAvailable(c.Synthesis)
	slog.Info("speech capabilities", "recognition", c.Recognition, "synthesis", c.Synthesis)
}

// ToggleRecording starts or stops voice input.
func (s *Service) ToggleRecording() error {
	return s.input.Toggle()
}

// SpeechResult relays a recognition result from the webview.
func (s *Service) SpeechResult(r speech.Result) {
	s.recognizer.DeliverResult(r)
}

// SpeechEnded relays the end of an utterance from the webview.
func (s *Service) SpeechEnded(utterance string) {
	s.recognizer.DeliverEnd(utterance)
}

// SpeakTranslation reads the translation aloud in the target language.
// It reports whether anything was spoken.
func (s *Service) SpeakTranslation() bool {
	st := s.session.Snapshot()
	return s.output.Speak(st.TranslatedText, st.TargetLang)
}

// ─────────────────────────────────────────────────────────────────────────────
// Clipboard
// ─────────────────────────────────────────────────────────────────────────────

// CopyTranslation writes the translation to the clipboard. Without a native
// clipboard the webview is asked to write it.
func (s *Service) CopyTranslation() error {
	text := s.session.TranslatedText()
	if text == "" {
		return nil
	}

	err := clipboard.SetText(text)
	if errors.Is(err, clipboard.ErrUnsupported) {
		s.emit(EventClipboardWrite, text)
		return nil
	}
	if err != nil {
		return fmt.Errorf("copy translation: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Detection & History
// ─────────────────────────────────────────────────────────────────────────────

// DetectLanguage detects the language of the given text.
func (s *Service) DetectLanguage(text string) types.DetectResult {
	code, ok := s.detector.Detect(text)
	if !ok {
		return types.DetectResult{Code: "auto", Name: "Auto"}
	}

	return types.DetectResult{
		Code:          code,
		Name:          language.Describe(code).Label,
		DefaultTarget: language.DefaultTarget(code),
		Detected:      true,
	}
}

// GetHistory returns up to limit translations of this session, newest first.
// A limit of zero or less returns all of them.
func (s *Service) GetHistory(limit int) ([]types.HistoryEntry, error) {
	if s.history == nil {
		return []types.HistoryEntry{}, nil
	}
	entries, err := s.history.Recent(limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []types.HistoryEntry{}
	}
	return entries, nil
}
