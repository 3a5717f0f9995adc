package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	sim "github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/trace"
)

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorValue   = lipgloss.Color("#04B575")
	colorWarning = lipgloss.Color("#FFAF00")
	colorSubtle  = lipgloss.Color("#767676")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorSubtle)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtle).Width(24)
	valueStyle = lipgloss.NewStyle().Foreground(colorValue).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarning)
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

// PrintReport writes the human-readable summary of a run to w.
func PrintReport(w io.Writer, res *sim.SimulationResult) {
	qm := res.QueueMetrics
	cfg := res.Config

	lines := []string{
		titleStyle.Render("=== Simulation Metrics ==="),
		row("Run ID", res.RunID),
		row("Servers", fmt.Sprintf("%d", cfg.Servers)),
		row("Arrival distribution", fmt.Sprintf("%s (mean %.4f)", cfg.ArrivalDistribution, cfg.ArrivalMean)),
		row("Service distribution", fmt.Sprintf("%s (mean %.4f)", cfg.ServiceDistribution, cfg.ServiceMean)),
		row("Priority", fmt.Sprintf("%v", cfg.PriorityEnabled)),
		row("Completed jobs", fmt.Sprintf("%d", len(res.Jobs))),
		row("Final clock", fmt.Sprintf("%.4f", res.FinalClock)),
		"",
		row("Lq", fmt.Sprintf("%.4f", qm.Lq)),
		row("Ls", fmt.Sprintf("%.4f", qm.Ls)),
		row("Wq", fmt.Sprintf("%.4f", qm.Wq)),
		row("Ws", fmt.Sprintf("%.4f", qm.Ws)),
		row("Arrival rate", fmt.Sprintf("%.4f", qm.ArrivalRate)),
		row("Utilization", fmt.Sprintf("%.2f%%", 100*qm.Utilization)),
		row("Idle", fmt.Sprintf("%.2f%%", 100*qm.IdleFraction)),
		"",
		row("Observed queue length", fmt.Sprintf("%.4f (max %d)", res.Observed.TimeAvgQueueLength, res.Observed.MaxQueueLength)),
		row("Observed system length", fmt.Sprintf("%.4f", res.Observed.TimeAvgSystemLength)),
		row("Wait p50/p90/p99", summaryPercentiles(res.Wait)),
		row("Turnaround p50/p90/p99", summaryPercentiles(res.Turnaround)),
	}
	if res.Truncated {
		u := res.Unfinished
		lines = append(lines, "", warnStyle.Render(fmt.Sprintf(
			"Horizon passed: %d unfinished (in service %d, waiting %d, not arrived %d)",
			u.Total(), u.InService, u.Waiting, u.NotArrived)))
	}
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, lines...))

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("=== Server Usage ==="))
	for _, u := range res.ServerUsage {
		fmt.Fprintln(w, row(fmt.Sprintf("Server %d", u.Server),
			fmt.Sprintf("busy %.4f  idle %.4f  jobs %d", u.BusyTime, u.IdleTime, u.JobsServed)))
	}
}

func summaryPercentiles(s sim.SeriesSummary) string {
	if s.Count == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.3f / %.3f / %.3f", s.P50, s.P90, s.P99)
}

// PrintTimeline writes one line per server listing its service intervals.
func PrintTimeline(w io.Writer, res *sim.SimulationResult) {
	tl := &trace.Timeline{Servers: res.ServerActivity}
	summary := trace.Summarize(tl)

	fmt.Fprintln(w, titleStyle.Render("=== Server Timeline ==="))
	for i, s := range res.ServerActivity {
		parts := make([]string, 0, len(s.Jobs))
		for _, iv := range s.Jobs {
			parts = append(parts, fmt.Sprintf("#%d[%.3f,%.3f)", iv.JobID, iv.StartTime, iv.EndTime))
		}
		fmt.Fprintln(w, row(fmt.Sprintf("Server %d", s.Server),
			fmt.Sprintf("span %.4f  %s", summary.Servers[i].BusySpan, strings.Join(parts, " "))))
	}
	fmt.Fprintln(w, row("Intervals", fmt.Sprintf("%d", tl.Len())))
	if summary.BusiestServer >= 0 {
		fmt.Fprintln(w, row("Busiest server", fmt.Sprintf("%d", summary.BusiestServer)))
	}
}

// SaveResults writes res as indented JSON to path.
func SaveResults(res *sim.SimulationResult, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	return nil
}
