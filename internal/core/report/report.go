package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
)

const (
	chartHeight  = 8
	chartWidth   = 60
	chartCaption = "latency per trial (ms)"
)

// Report is the summary shown once the configured number of trials is reached.
type Report struct {
	Distance float64
	Width    float64
	Times    []time.Duration
}

// New builds a report from the experiment configuration and the recorded latencies.
func New(distance, width float64, times []time.Duration) Report {
	return Report{
		Distance: distance,
		Width:    width,
		Times:    append([]time.Duration(nil), times...),
	}
}

// Lines returns the textual report: distance, width and the latency list.
func (report Report) Lines() []string {
	return []string{
		"Distance: " + formatValue(report.Distance),
		"Width: " + formatValue(report.Width),
		"Times in ms: " + FormatTimes(report.Times),
	}
}

// String joins the report lines.
func (report Report) String() string {
	return strings.Join(report.Lines(), "\n")
}

// Chart plots the latencies. It is empty when there are fewer than two trials.
func (report Report) Chart() string {
	if len(report.Times) < 2 {
		return ""
	}
	data := make([]float64, len(report.Times))
	for i, elapsed := range report.Times {
		data[i] = float64(elapsed.Milliseconds())
	}
	return asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(chartCaption),
	)
}

// FormatTimes renders latencies as whole milliseconds separated by ", ".
func FormatTimes(times []time.Duration) string {
	parts := make([]string, len(times))
	for i, elapsed := range times {
		parts[i] = strconv.FormatInt(elapsed.Milliseconds(), 10)
	}
	return strings.Join(parts, ", ")
}

func formatValue(value float64) string {
	return fmt.Sprint(value)
}
