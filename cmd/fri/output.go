package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arnavshah/fatigue-risk-api/pkg/fatigue"
	"github.com/arnavshah/fatigue-risk-api/pkg/models"
	"github.com/charmbracelet/lipgloss"
)

var levelStyles = map[fatigue.Level]lipgloss.Style{
	fatigue.LevelLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	fatigue.LevelModerate: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	fatigue.LevelElevated: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	fatigue.LevelCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func styleLevel(l fatigue.Level) string {
	// Pad before styling so escape codes do not break alignment.
	return levelStyles[l].Render(fmt.Sprintf("%-9s", l.String()))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResults(w io.Writer, resp models.CombinedResponse) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%4s  %-5s %-5s %5s %6s  %6s %6s %6s  %6s %-9s  %6s %-9s",
		"day", "start", "end", "duty", "rest", "cum", "time", "job", "FRI", "level", "FGI", "level")))
	for _, r := range resp.Results {
		shift := "D"
		if r.IsNight {
			shift = "N"
		}
		fmt.Fprintf(w, "%4d%s %-5s %-5s %5.2f %6.2f  %6.3f %6.3f %6.3f  %6.3f %s  %6.2f %s\n",
			r.Day, shift, r.StartTime, r.EndTime, r.DutyLength, r.RestBefore,
			r.Cumulative, r.Timing, r.JobBreaks,
			r.RiskIndex, styleLevel(r.RiskLevel.Level),
			r.FatigueIndex, styleLevel(r.FatigueLevel.Level))
	}

	s := resp.Summary
	fmt.Fprintf(w, "\n%d shifts, max FRI %.3f, avg FRI %.3f, %d high risk days, worst %s\n",
		s.Shifts, s.MaxRisk, s.AvgRisk, s.HighRiskDayCount, styleLevel(s.WorstLevel.Level))
	if s.WorstFatigueLevel != nil {
		fmt.Fprintf(w, "max FGI %.2f, worst %s\n", s.MaxFatigue, styleLevel(s.WorstFatigueLevel.Level))
	}
	if s.Compliant {
		fmt.Fprintln(w, levelStyles[fatigue.LevelLow].Render("pattern is below the critical Risk Index"))
	} else {
		fmt.Fprintln(w, levelStyles[fatigue.LevelCritical].Render("pattern reaches the critical Risk Index"))
	}
}

func printRoles(w io.Writer, results []fatigue.RoleComparisonResult) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-28s %2s %2s  %7s %7s %5s  %s", "role", "W", "A", "max", "avg", "high", "compliant")))
	for _, r := range results {
		ok := levelStyles[fatigue.LevelLow].Render("yes")
		if !r.IsCompliant {
			ok = levelStyles[fatigue.LevelCritical].Render("no")
		}
		fmt.Fprintf(w, "%-28s %2d %2d  %7.3f %7.3f %5d  %s\n", r.Role, r.Workload, r.Attention, r.MaxRisk, r.AvgRisk, r.HighRiskDayCount, ok)
	}
}

func printPresets(w io.Writer, roles []fatigue.RolePreset) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-28s %8s %9s", "role", "workload", "attention")))
	for _, r := range roles {
		fmt.Fprintf(w, "%-28s %8d %9d\n", r.Name, r.Workload, r.Attention)
	}
}
