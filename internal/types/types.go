// Package types provides shared type definitions for the application.
package types

// SessionState is a snapshot of the translation session as shown in the UI.
type SessionState struct {
	SourceText     string `json:"sourceText"`
	TranslatedText string `json:"translatedText"`
	SourceLang     string `json:"sourceLang"`
	TargetLang     string `json:"targetLang"`
	IsTranslating  bool   `json:"isTranslating"`
	IsRecording    bool   `json:"isRecording"`

	// Version increases with every change so the webview can drop
	// snapshots that arrive out of order.
	Version uint64 `json:"version"`
}

// Translation is a completed translation.
type Translation struct {
	RequestID      string `json:"requestId"`
	SourceLang     string `json:"sourceLang"`
	TargetLang     string `json:"targetLang"`
	Text           string `json:"text"`
	TranslatedText string `json:"translatedText"`
}

// DetectResult represents the result of language detection.
type DetectResult struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	DefaultTarget string `json:"defaultTarget"`
	Detected      bool   `json:"detected"`
}

// Notice is a message surfaced to the user.
type Notice struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"` // Unix timestamp in milliseconds
}

// HistoryEntry is a translation recorded during the current session.
type HistoryEntry struct {
	ID             string `json:"id"`
	SourceLang     string `json:"sourceLang"`
	TargetLang     string `json:"targetLang"`
	Text           string `json:"text"`
	TranslatedText string `json:"translatedText"`
	CreatedAt      int64  `json:"createdAt"` // Unix timestamp in milliseconds
}
