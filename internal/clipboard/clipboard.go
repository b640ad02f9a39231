// Package clipboard abstracts the system clipboard write primitive so the
// overlay session can be tested without touching the host clipboard.
package clipboard

import "github.com/atotto/clipboard"

// Writer is the clipboard write primitive. One call per capture; failures
// are terminal for that attempt.
type Writer interface {
	Write(text string) error
}

// System writes to the host system clipboard.
type System struct{}

func (System) Write(text string) error {
	return clipboard.WriteAll(text)
}
