// Package app provides the core application service for Wails bindings.
package app

// Event names for frontend communication. Speech events are defined in the
// speech package.
const (
	EventSessionState   = "session-state"
	EventNotice         = "notice"
	EventClipboardWrite = "clipboard-write"
)
