// Package report provides the small logging surface shared by the engine
// packages. A Reporter is injected rather than configured globally so that
// library code never touches process-wide state; a nil *Reporter is valid
// and silent, which keeps tests quiet by default.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	warnLabel  = color.New(color.FgYellow).SprintFunc()
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Reporter writes leveled, prefixed messages to a single writer. Debug
// output is suppressed unless enabled.
type Reporter struct {
	out   io.Writer
	debug bool
}

// New returns a Reporter writing to out. Pass debug to enable Debugf
// output.
func New(out io.Writer, debug bool) *Reporter {
	return &Reporter{out: out, debug: debug}
}

// Stderr returns a Reporter writing to standard error.
func Stderr(debug bool) *Reporter {
	return New(os.Stderr, debug)
}

// Infof reports progress information.
func (r *Reporter) Infof(format string, args ...any) {
	r.printf("[INFO] "+format, args...)
}

// Warnf reports a recoverable condition, such as a skipped tag or an
// ignored commit message.
func (r *Reporter) Warnf(format string, args ...any) {
	if r == nil {
		return
	}
	r.printf(warnLabel("[WARNING]")+" "+format, args...)
}

// Errorf reports a failure. It does not terminate; callers decide that.
func (r *Reporter) Errorf(format string, args ...any) {
	if r == nil {
		return
	}
	r.printf(errorLabel("[ERROR]")+" "+format, args...)
}

// Debugf reports diagnostic detail, suppressed unless the Reporter was
// created with debug enabled.
func (r *Reporter) Debugf(format string, args ...any) {
	if r == nil || !r.debug {
		return
	}
	r.printf("[DEBUG] "+format, args...)
}

func (r *Reporter) printf(format string, args ...any) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}
