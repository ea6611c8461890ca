//go:build !js

package input

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func readClipboard() (string, error) {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return "", clipboardErr
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
