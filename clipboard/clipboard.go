package clipboard

import (
	"golang.design/x/clipboard"
)

func Init() error {
	return clipboard.Init()
}

// ReadText returns the current text clipboard contents, or "" when empty.
func ReadText() string {
	return string(clipboard.Read(clipboard.FmtText))
}

func Write(text string) error {
	// Write to clipboard - this returns a channel, not an error
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
