//go:build js

package input

import "errors"

func readClipboard() (string, error) {
	return "", errors.New("clipboard not available in the browser build")
}
