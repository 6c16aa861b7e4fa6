// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/salesman/dataset"
	"github.com/katalvlaran/salesman/planner"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleCell    = lipgloss.NewStyle().PaddingRight(2)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// renderPlan prints the stops in tour order, one leg per row, and totals.
func renderPlan(w io.Writer, plan planner.Plan) {
	if plan.Empty() {
		fmt.Fprintln(w, styleWarning.Render(iconWarning+" no round trip connects the selected stops"))
		if len(plan.Unreachable) > 0 {
			fmt.Fprintln(w, styleDim.Render("cut off from the depot: "+strings.Join(plan.Unreachable, ", ")))

			return
		}
		fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("%d paths searched", plan.Paths)))

		return
	}

	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Plan %s (%s)", plan.ID, plan.Outcome)))
	rows := [][]string{{"#", "id", "stop", "leg (m)"}}
	for i, v := range plan.Stops {
		leg := "-"
		if i > 0 && plan.Route != nil {
			leg = fmt.Sprintf("%.0f", plan.Route.Legs[i-1].Meters)
		}
		rows = append(rows, []string{fmt.Sprint(i + 1), v.ID, strings.ReplaceAll(v.Name, "_", " "), leg})
	}
	fmt.Fprintln(w, table(rows))

	fmt.Fprintf(w, "%s weight %s, round trip %s\n",
		styleSuccess.Render(iconSuccess),
		styleNumber.Render(fmt.Sprintf("%g", plan.Weight)),
		styleNumber.Render(fmt.Sprintf("%g", plan.CycleWeight)),
	)
	if plan.Outcome == planner.OutcomeTour {
		fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("%d paths, %d cycles, %s", plan.Paths, plan.Candidates, plan.Elapsed)))
	}
	if plan.Route != nil {
		fmt.Fprintln(w, styleDim.Render("polyline "+iconArrow+" "+plan.Route.Polyline))
	}
}

// renderCatalogue prints the pickable stops.
// dist holds the shortest network distance from the depot per stop.
func renderCatalogue(w io.Writer, depot dataset.VertexRecord, entries []dataset.CatalogueEntry, dist map[int]float64) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Depot %d: %s", depot.ID, depot.Label())))
	rows := [][]string{{"id", "stop", "lat", "lng", "from depot (m)"}}
	for _, e := range entries {
		reach := styleError.Render(iconError + " unreachable")
		if d, ok := dist[e.ID]; ok && !math.IsInf(d, 1) {
			reach = fmt.Sprintf("%.0f", d)
		}
		rows = append(rows, []string{fmt.Sprint(e.ID), e.Label, fmt.Sprintf("%.5f", e.Lat), fmt.Sprintf("%.5f", e.Lng), reach})
	}
	fmt.Fprintln(w, table(rows))
}

// renderBench prints one row per measured graph size.
func renderBench(w io.Writer, rows []benchRow) {
	fmt.Fprintln(w, styleTitle.Render("Exhaustive search, random complete graphs"))
	cells := [][]string{{"n", "paths", "cycles", "best", "elapsed"}}
	for _, r := range rows {
		cells = append(cells, []string{
			fmt.Sprint(r.n),
			styleNumber.Render(fmt.Sprint(r.paths)),
			fmt.Sprint(r.candidates),
			fmt.Sprintf("%g", r.weight),
			r.elapsed.Round(time.Microsecond).String(),
		})
	}
	fmt.Fprintln(w, table(cells))
}

// table lays rows out in padded columns; the first row is the header.
func table(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	cols := make([]string, len(rows[0]))
	for c := range cols {
		cells := make([]string, 0, len(rows))
		for r, row := range rows {
			cell := row[c]
			if r == 0 {
				cell = styleDim.Render(cell)
			}
			cells = append(cells, cell)
		}
		cols[c] = styleCell.Render(lipgloss.JoinVertical(lipgloss.Left, cells...))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
