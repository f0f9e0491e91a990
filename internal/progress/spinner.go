package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows an animated indicator on stderr while a slow operation
// runs. It degrades to a no-op when stderr is not a terminal, so command
// output stays clean under redirection and in CI.
type Spinner struct {
	inner *spinner.Spinner
}

// NewSpinner creates a spinner with the given message. The animation set
// follows the detected terminal capabilities.
func NewSpinner(message string) *Spinner {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return &Spinner{}
	}

	symbols := SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	return &Spinner{inner: s}
}

// Start begins the animation. No-op without a terminal.
func (s *Spinner) Start() {
	if s.inner != nil {
		s.inner.Start()
	}
}

// Stop halts the animation and clears the line. No-op without a terminal.
func (s *Spinner) Stop() {
	if s.inner != nil {
		s.inner.Stop()
	}
}
