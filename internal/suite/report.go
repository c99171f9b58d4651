package suite

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Result is the outcome of one input of one expect statement.
type Result struct {
	Pos     lexer.Position
	Name    string
	Pattern string
	Input   string
	Want    bool // true for accepts
	Got     bool
}

func (r Result) Passed() bool { return r.Want == r.Got }

func verb(accept bool) string {
	if accept {
		return "accepts"
	}
	return "rejects"
}

func (r Result) String() string {
	if r.Passed() {
		return fmt.Sprintf("ok   %s %s %q", r.Name, verb(r.Want), r.Input)
	}
	got := "rejected"
	if r.Got {
		got = "accepted"
	}
	return fmt.Sprintf("FAIL %s: %s %s %q, input was %s", r.Pos, r.Name, verb(r.Want), r.Input, got)
}

// Report collects results in execution order.
type Report struct {
	Results []Result
}

func (r *Report) Add(res Result) { r.Results = append(r.Results, res) }

func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed() {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int { return len(r.Results) - r.Passed() }

func (r *Report) OK() bool { return r.Failed() == 0 }

// Failures returns only the failed results.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// WriteTo prints every result and a summary line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, res := range r.Results {
		sb.WriteString(res.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d passed, %d failed\n", r.Passed(), r.Failed())
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Markdown renders the report as a table.
func (r *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("| | pattern | expects | input | location |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, res := range r.Results {
		mark := "✅"
		if !res.Passed() {
			mark = "❌"
		}
		fmt.Fprintf(&sb, "| %s | `%s` | %s | `%s` | %s |\n",
			mark, escapeCell(res.Pattern), verb(res.Want), escapeCell(res.Input), res.Pos)
	}
	fmt.Fprintf(&sb, "\n**%d passed, %d failed**\n", r.Passed(), r.Failed())
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
