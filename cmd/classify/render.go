// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/choropleth/classify"
	"github.com/katalvlaran/choropleth/internal/logging"
	"github.com/katalvlaran/choropleth/interp"
	"github.com/katalvlaran/choropleth/split"
)

type breaksOutput struct {
	Algorithm string    `json:"algorithm"`
	Breaks    []float64 `json:"breaks"`
	Classes   int       `json:"classes"`
	GVF       float64   `json:"gvf"`
}

func (o breaksOutput) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\nclasses %d\ngvf %.4f\n", o.Algorithm, formatFloats(o.Breaks), o.Classes, o.GVF)
	return err
}

type groupOutput struct {
	Lower  float64   `json:"lower"`
	Upper  float64   `json:"upper"`
	Count  int       `json:"count"`
	Values []float64 `json:"values"`
}

// writeGroups drains groups, one line (text or JSON) per group.
func (a *app) writeGroups(w io.Writer, groups split.Groups[[]string]) error {
	acc := columnAccessor(a.opts.input.column)
	for g := range split.Seq(groups) {
		out := groupOutput{
			Lower:  g.Range.Lower,
			Upper:  g.Range.Upper,
			Count:  len(g.Members),
			Values: make([]float64, 0, len(g.Members)),
		}
		for _, rec := range g.Members {
			// Members passed the accessor once already.
			v, _ := acc(rec)
			out.Values = append(out.Values, v)
		}

		var err error
		if a.opts.json {
			err = writeJSON(w, out)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%d\t%s\n", g.Range, out.Count, formatFloats(out.Values))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// legend renders class legends. Swatches are painted only on terminals.
type legend struct {
	color bool
	title lipgloss.Style
	cell  lipgloss.Style
	r     *lipgloss.Renderer
}

func newLegend(w io.Writer) *legend {
	r := lipgloss.NewRenderer(w)
	color := logging.IsTerminal(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &legend{
		color: color,
		title: r.NewStyle().Bold(true),
		cell:  r.NewStyle(),
		r:     r,
	}
}

// render writes one line per class: swatch, range, value, hex color, count.
func (l *legend) render(w io.Writer, name, algorithm string, classes []classify.Class[[]string]) error {
	if _, err := fmt.Fprintln(w, l.title.Render(name+" ("+algorithm+")")); err != nil {
		return err
	}

	rangeWidth, valueWidth := 0, 0
	for _, c := range classes {
		rangeWidth = max(rangeWidth, len(c.Range.String()))
		valueWidth = max(valueWidth, len(c.Value.String()))
	}
	rangeCell := l.cell.Width(rangeWidth + 2)
	valueCell := l.cell.Width(valueWidth + 2)

	for _, c := range classes {
		hex, isColor := hexColor(c.Value)
		var b strings.Builder
		b.WriteString("  ")
		if l.color && isColor {
			b.WriteString(l.r.NewStyle().Background(lipgloss.Color(hex)).Render("    "))
			b.WriteString(" ")
		}
		b.WriteString(rangeCell.Render(c.Range.String()))
		b.WriteString(valueCell.Render(c.Value.String()))
		if isColor {
			b.WriteString(hex + "  ")
		}
		b.WriteString(strconv.Itoa(len(c.Members)))
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}

// hexColor reads a 3-tuple as 0-255 RGB. Components are clamped.
func hexColor(v interp.Value) (string, bool) {
	if len(v) != 3 {
		return "", false
	}
	c := colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}.Clamped()
	return c.Hex(), true
}
