package rules

import (
	"log/slog"
	"strings"
)

// Route is the numbered output port a routing host sends the file down.
type Route int

const (
	RouteNone Route = 0
	RoutePass Route = 1
	RouteFail Route = 2
)

// Entry is one auditable log line produced during evaluation.
type Entry struct {
	Message string
	Attrs   []slog.Attr
}

// Decision is the outcome of evaluating one rule against one file.
type Decision struct {
	Rule    Kind
	Proceed bool
	// Route is set only by families that report through output ports.
	Route Route
	// Reason is a short machine-readable tag for the branch that decided.
	Reason  string
	Entries []Entry
	// Actual and Expected carry the audio order projections when the order
	// check compared them.
	Actual   []string
	Expected []string

	inline bool
}

// Log joins the entries into the single log string the host expects.
// Line-oriented rules terminate every entry with a newline; the order rule
// emits one unterminated line.
func (d Decision) Log() string {
	var b strings.Builder
	for i, entry := range d.Entries {
		if d.inline {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(entry.Message)
			continue
		}
		b.WriteString(entry.Message)
		b.WriteByte('\n')
	}
	return b.String()
}

// Output returns the decision as an output port number, deriving one from
// Proceed when the rule did not set a route.
func (d Decision) Output() Route {
	if d.Route != RouteNone {
		return d.Route
	}
	if d.Proceed {
		return RoutePass
	}
	return RouteFail
}

// Result returns "pass" or "fail".
func (d Decision) Result() string {
	if d.Output() == RoutePass {
		return "pass"
	}
	return "fail"
}

type recorder struct {
	entries []Entry
}

func (r *recorder) add(message string, attrs ...slog.Attr) {
	r.entries = append(r.entries, Entry{Message: message, Attrs: attrs})
}
