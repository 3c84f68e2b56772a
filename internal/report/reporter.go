package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints the human-readable progress lines of a run
type Reporter struct {
	out     io.Writer
	verbose bool

	success *color.Color
	info    *color.Color
	warn    *color.Color
	fail    *color.Color
	heading *color.Color
}

// New creates a reporter writing to out. Debug lines are only printed when
// verbose is set.
func New(out io.Writer, verbose, noColor bool) *Reporter {
	r := &Reporter{
		out:     out,
		verbose: verbose,
		success: color.New(color.FgGreen),
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		heading: color.New(color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{r.success, r.info, r.warn, r.fail, r.heading} {
			c.DisableColor()
		}
	}
	return r
}

// Printf prints an uncolored line
func (r *Reporter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", a...)
}

// Heading prints a bold title underlined with '='
func (r *Reporter) Heading(title string) {
	r.heading.Fprintln(r.out, title)
	underline := make([]byte, len([]rune(title)))
	for i := range underline {
		underline[i] = '='
	}
	fmt.Fprintln(r.out, string(underline))
}

func (r *Reporter) Success(format string, a ...interface{}) {
	r.success.Fprintf(r.out, format+"\n", a...)
}

func (r *Reporter) Info(format string, a ...interface{}) {
	r.info.Fprintf(r.out, format+"\n", a...)
}

func (r *Reporter) Warn(format string, a ...interface{}) {
	r.warn.Fprintf(r.out, format+"\n", a...)
}

func (r *Reporter) Error(format string, a ...interface{}) {
	r.fail.Fprintf(r.out, format+"\n", a...)
}

// Debugf prints only in verbose mode
func (r *Reporter) Debugf(format string, a ...interface{}) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, format+"\n", a...)
}
