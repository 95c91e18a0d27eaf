package harness

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"goldout/internal/runner"
)

// Separator visually divides sections and cases in console output.
const Separator = "----------------------------------"

const (
	cmdPrefix   = "[CMD]"
	infoPrefix  = "[INFO]"
	warnPrefix  = "[WARN]"
	errorPrefix = "[ERROR]"
	panicPrefix = "[PANIC]"
)

// Reporter writes the harness's console output. It is observability only;
// correctness lives in the Summary.
type Reporter struct {
	out   io.Writer
	color bool

	infoStyle lipgloss.Style
	warnStyle lipgloss.Style
	failStyle lipgloss.Style
	cmdStyle  lipgloss.Style
}

// NewReporter creates a reporter writing to out. Styling is applied only
// when color is true.
func NewReporter(out io.Writer, color bool) *Reporter {
	return &Reporter{
		out:       out,
		color:     color,
		infoStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warnStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		failStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		cmdStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// ColorEnabled reports whether out is a terminal.
func ColorEnabled(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (r *Reporter) render(style lipgloss.Style, prefix string) string {
	if !r.color {
		return prefix
	}
	return style.Render(prefix)
}

// Separator writes a section divider line.
func (r *Reporter) Separator() {
	fmt.Fprintln(r.out, Separator)
}

// Section writes a mode header. leading controls the separator above it,
// dropped when the previous section already ended on one.
func (r *Reporter) Section(title string, leading bool) {
	if leading {
		r.Separator()
	}
	fmt.Fprintln(r.out, r.render(r.infoStyle, infoPrefix), title)
	r.Separator()
}

// Command traces the command line about to run.
func (r *Reporter) Command(line string) {
	fmt.Fprintln(r.out, r.render(r.cmdStyle, cmdPrefix), line)
}

// Warnf writes a non-fatal warning.
func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintln(r.out, r.render(r.warnStyle, warnPrefix), fmt.Sprintf(format, args...))
}

// Recorded notes a freshly written baseline.
func (r *Reporter) Recorded(path string) {
	fmt.Fprintf(r.out, "Writing to: %s..\n", path)
	r.Separator()
}

// Comparing introduces a test-mode case.
func (r *Reporter) Comparing(path string) {
	fmt.Fprintln(r.out, r.render(r.infoStyle, infoPrefix), "Comparing output with:", path)
}

// Case writes a test-mode case result. On failure both full texts are
// printed for diagnosis.
func (r *Reporter) Case(o Outcome) {
	switch o.Status {
	case StatusPass:
		fmt.Fprintln(r.out, r.render(r.infoStyle, infoPrefix), fmt.Sprintf("`%s` test: OK", o.Case.Name))
	case StatusFail:
		fmt.Fprintln(r.out, r.render(r.failStyle, errorPrefix), fmt.Sprintf("`%s`: FAILED", o.Case.Name))
		fmt.Fprintln(r.out, r.render(r.failStyle, errorPrefix), fmt.Sprintf("Got: %s\nExpected: %s", o.Got, o.Expected))
	case StatusMissing:
		fmt.Fprintln(r.out, r.render(r.failStyle, errorPrefix), fmt.Sprintf("`%s`: no baseline recorded at %s", o.Case.Name, o.BaselinePath))
	}
}

// FormatFatal formats a run-aborting error with the fatal marker. Subprocess
// failures additionally surface the captured stderr.
func FormatFatal(err error) string {
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		return panicPrefix + " " + exitErr.Error() + "\n" +
			panicPrefix + " " + strings.TrimRight(exitErr.Stderr, "\n")
	}
	return panicPrefix + " " + err.Error()
}

// FormatJSON formats a run summary as JSON.
func FormatJSON(sum Summary) (string, error) {
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
