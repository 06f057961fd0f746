// Package clipboard writes text to the system clipboard.
package clipboard

import "errors"

// ErrUnsupported is returned on platforms without a native clipboard
// writer. Callers fall back to the webview clipboard.
var ErrUnsupported = errors.New("clipboard write not supported on this platform")

// SetText replaces the clipboard contents with text.
func SetText(text string) error {
	return setClipboardContent(text)
}
