// Package clipboard wraps system clipboard access. Only plain text is
// supported.
package clipboard

import (
	atotto "github.com/atotto/clipboard"

	"clipstash/pkg/errors"
)

// System reads and writes the OS clipboard.
type System struct{}

// Read returns the current plain-text clipboard contents.
func (System) Read() (string, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return "", errors.ClipboardError(err)
	}
	return text, nil
}

// Write replaces the clipboard contents with text.
func (System) Write(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return errors.ClipboardError(err)
	}
	return nil
}

// IsAvailable reports whether a clipboard backend is usable on this system.
func IsAvailable() bool {
	_, err := atotto.ReadAll()
	return err == nil
}
