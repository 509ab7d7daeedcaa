package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/edgejump/internal/engine"
	"github.com/yourusername/edgejump/internal/relocate"
	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

// DecisionRow is one replayed sample and what the engine did with it
type DecisionRow struct {
	Index    int
	Sample   engine.Sample
	Decision relocate.Decision
	Expect   *types.Point // nil when the scenario recorded no expectation
}

// Matches reports whether the decision agrees with the expectation
func (r DecisionRow) Matches() bool {
	if r.Expect == nil {
		return true
	}
	return r.Decision.Moved && r.Decision.Position == *r.Expect
}

// PrintScreensTable prints the screens of a topology in a table format
func PrintScreensTable(w io.Writer, topo *screen.Topology) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Bounds", "Work Area", "DPI", "Scale", "Primary")

	for _, s := range topo.Screens() {
		primary := ""
		if s.Primary {
			primary = "yes"
		}

		table.Append(
			fmt.Sprintf("%d", s.ID),
			truncate(s.Name, 20),
			s.Bounds.String(),
			s.WorkArea.String(),
			fmt.Sprintf("%d", s.DPI),
			fmt.Sprintf("%.2fx", s.Scale()),
			primary,
		)
	}

	table.Render()
}

// PrintDecisionsTable prints replayed samples and their outcome
func PrintDecisionsTable(w io.Writer, rows []DecisionRow) {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Kind", "Mouse", "Cursor", "Action", "Result", "Check")

	for _, r := range rows {
		result := string(r.Decision.Reason)
		if r.Decision.Moved {
			result = "-> " + r.Decision.Position.String()
			if r.Decision.Target != nil {
				result += " on " + truncate(r.Decision.Target.Name, 12)
			}
		}

		check := ""
		if r.Expect != nil {
			check = "ok"
			if !r.Matches() {
				check = "want " + r.Expect.String()
			}
		}

		table.Append(
			fmt.Sprintf("%d", r.Index),
			string(r.Sample.Kind),
			r.Sample.Mouse.String(),
			r.Sample.Cursor.String(),
			string(r.Decision.Action),
			result,
			check,
		)
	}

	table.Render()
}

// PrintStats prints the engine counters as a two-column table
func PrintStats(w io.Writer, st engine.Stats) {
	table := tablewriter.NewWriter(w)
	table.Header("Counter", "Value")
	table.Append("evaluations", fmt.Sprintf("%d", st.Evaluations))
	table.Append("jumps", fmt.Sprintf("%d", st.Jumps))
	table.Append("declined", fmt.Sprintf("%d", st.Declined))
	table.Append("pass-through", fmt.Sprintf("%d", st.PassThrough))
	table.Append("screens", fmt.Sprintf("%d", st.Screens))
	table.Append("generation", st.Generation)
	table.Render()
}

// Helper functions

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
