package report

import (
	"fmt"
	"io"
	"time"

	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/olekukonko/tablewriter"
)

// Render writes a human-readable summary of the report to w.
func Render(w io.Writer, r *domain.Report) {
	fmt.Fprintf(w, "Verification %s\n", r.Outcome())
	if !r.StartedAt.IsZero() {
		fmt.Fprintf(w, "Started:  %s\n", r.StartedAt.Format(time.RFC3339))
	}
	if !r.FinishedAt.IsZero() {
		fmt.Fprintf(w, "Finished: %s\n", r.FinishedAt.Format(time.RFC3339))
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "Status", "Duration", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, step := range r.Steps {
		table.Append([]string{
			string(step.Kind),
			string(step.Status),
			formatDuration(step.Duration),
			step.Detail,
		})
	}
	table.Render()

	if r.Artifact != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Artifact: %s (%d bytes, %s)\n", r.Artifact.Path, r.Artifact.Size, r.Artifact.Fingerprint)
	}
	if r.Failure != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Failure: %s\n", r.Failure)
	}
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.Round(time.Millisecond).String()
}
