package models

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arnavshah/fatigue-risk-api/pkg/fatigue"
)

var requiredShiftColumns = []string{"day", "start_time", "end_time"}

// ParseShiftsCSV reads shifts from CSV with a header row. day, start_time and
// end_time are required columns; commute_in, commute_out, workload,
// attention, break_frequency and break_length are optional, and an empty
// cell leaves that field unset.
func ParseShiftsCSV(r io.Reader) ([]fatigue.ShiftDefinition, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int)
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range requiredShiftColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	optional := func(record []string, name string, line int) (*int, error) {
		i, ok := cols[name]
		if !ok || i >= len(record) || strings.TrimSpace(record[i]) == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(strings.TrimSpace(record[i]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, name, err)
		}
		return &v, nil
	}

	var shifts []fatigue.ShiftDefinition
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		day, err := strconv.Atoi(strings.TrimSpace(record[cols["day"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: day: %w", line, err)
		}
		s := fatigue.ShiftDefinition{
			Day:       day,
			StartTime: strings.TrimSpace(record[cols["start_time"]]),
			EndTime:   strings.TrimSpace(record[cols["end_time"]]),
		}
		fields := []struct {
			name string
			dst  **int
		}{
			{"commute_in", &s.CommuteIn},
			{"commute_out", &s.CommuteOut},
			{"workload", &s.Workload},
			{"attention", &s.Attention},
			{"break_frequency", &s.BreakFrequency},
			{"break_length", &s.BreakLength},
		}
		for _, f := range fields {
			v, err := optional(record, f.name, line)
			if err != nil {
				return nil, err
			}
			*f.dst = v
		}
		shifts = append(shifts, s)
	}
	return shifts, nil
}

// WriteResultsCSV writes combined results, one row per shift.
func WriteResultsCSV(w io.Writer, results []fatigue.CombinedFatigueResult) error {
	writer := csv.NewWriter(w)
	writer.Write([]string{
		"day", "start_time", "end_time", "duty_hours", "rest_before",
		"cumulative", "timing", "job_breaks", "risk_index", "risk_level",
		"fatigue_index", "fatigue_level", "night",
	})
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	for _, r := range results {
		writer.Write([]string{
			strconv.Itoa(r.Day),
			r.StartTime,
			r.EndTime,
			fmt.Sprintf("%.2f", r.DutyLength),
			fmt.Sprintf("%.2f", r.RestBefore),
			f(r.Cumulative),
			f(r.Timing),
			f(r.JobBreaks),
			f(r.RiskIndex),
			r.RiskLevel.Level.String(),
			fmt.Sprintf("%.2f", r.FatigueIndex),
			r.FatigueLevel.Level.String(),
			strconv.FormatBool(r.IsNight),
		})
	}
	writer.Flush()
	return writer.Error()
}
