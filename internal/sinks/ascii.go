package sinks

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/despacho/internal/model"
)

const (
	elevationWidthChars = 60
	elevationRows        = 5
)

// DrawElevationPreview renders a coarse ASCII elevation of the beam:
// every top/bottom bar span scaled onto a fixed character width,
// in the teacher's box-drawing idiom (internal/diagram/ascii.go).
func DrawElevationPreview(geo model.Geometry, result model.DetailingResult) string {
	var sb strings.Builder
	if geo.TotalLengthM <= 0 {
		return ""
	}

	sb.WriteString("\n  VISTA EN ELEVACIÓN (esc. ASCII)\n")
	sb.WriteString("  " + strings.Repeat("─", elevationWidthChars+2) + "\n")

	topLine := barTrack(geo.TotalLengthM, result.TopBars, elevationWidthChars)
	sb.WriteString("  TOP  │" + topLine + "│\n")
	sb.WriteString("       │" + strings.Repeat(" ", elevationWidthChars) + "│\n")
	bottomLine := barTrack(geo.TotalLengthM, result.BottomBars, elevationWidthChars)
	sb.WriteString("  BOT  │" + bottomLine + "│\n")
	sb.WriteString("  " + strings.Repeat("─", elevationWidthChars+2) + "\n")

	markers := make([]rune, elevationWidthChars)
	for i := range markers {
		markers[i] = ' '
	}
	for _, support := range geo.Supports {
		pos := clampIdx(int((support.StartM/geo.TotalLengthM)*float64(elevationWidthChars)), elevationWidthChars)
		markers[pos] = '▲'
	}
	sb.WriteString("       │" + string(markers) + "│\n")

	for _, support := range geo.Supports {
		sb.WriteString(fmt.Sprintf("  %s en %.2f m\n", support.Label, support.StartM))
	}

	return sb.String()
}

func barTrack(totalLengthM float64, bars []model.RebarDetail, width int) string {
	track := make([]rune, width)
	for i := range track {
		track[i] = ' '
	}
	for _, bar := range bars {
		startIdx := clampIdx(int((bar.StartM/totalLengthM)*float64(width)), width)
		endIdx := clampIdx(int((bar.EndM/totalLengthM)*float64(width)), width)
		if endIdx < startIdx {
			startIdx, endIdx = endIdx, startIdx
		}
		for i := startIdx; i <= endIdx && i < width; i++ {
			track[i] = '█'
		}
	}
	return string(track)
}

func clampIdx(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}

// MaterialSummaryBox draws a boxed material take-off summary (grounded on
// internal/diagram/ascii.go's DrawSummaryBox).
func MaterialSummaryBox(result model.DetailingResult) string {
	lines := make([]string, 0, len(result.MaterialList)+2)
	for _, item := range result.MaterialList {
		lines = append(lines, fmt.Sprintf("%-6s %6.1f kg  %3d pzas  %5.1f%% desp.", item.Diameter, item.WeightKG, item.Pieces, item.WastePct))
	}
	lines = append(lines, fmt.Sprintf("Total: %.1f kg en %d barras", result.TotalWeightKG, result.TotalBarsCount))
	lines = append(lines, fmt.Sprintf("Puntaje de optimización: %d/100", result.OptimizationScore))
	return drawSummaryBox("DESPIECE DE MATERIALES", lines)
}

func drawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// WeightTrendGraph plots each material item's weight as an asciigraph
// bar-like line, useful for a terminal preview of where steel mass
// concentrates across diameters.
func WeightTrendGraph(items []model.MaterialItem) string {
	if len(items) == 0 {
		return ""
	}
	series := make([]float64, len(items))
	for i, item := range items {
		series[i] = item.WeightKG
	}
	return asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(len(items)*4))
}
