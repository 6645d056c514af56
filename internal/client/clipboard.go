package client

import "github.com/atotto/clipboard"

// Clipboard receives revealed secrets for `vault reveal --copy`.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
