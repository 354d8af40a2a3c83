package testbed

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects how a report is written.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatTable, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown report format %q", name)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errStyle    = cellStyle.Foreground(lipgloss.Color("196"))
)

// Write renders r to w in the given format.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	case FormatTable, "":
		_, err := io.WriteString(w, r.Render())
		return err
	}
	return fmt.Errorf("unknown report format %q", format)
}

// Render lays the report out as two terminal tables, nodes then queries.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s) run %s", r.Rig, r.Precision, r.RunID)))
	b.WriteString("\n")

	nodes := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("NODE", "PARENT", "ORIGIN", "EULER°", "SCALE", "DET", "ORTHO").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		})
	for _, n := range r.Nodes {
		nodes.Row(n.Name, n.Parent, fmtVec(n.Origin), fmtVec(n.EulerDeg), fmtVec(n.Scale),
			fmt.Sprintf("%.4g", n.Determinant), fmt.Sprintf("%d", n.Orthogonal))
	}
	b.WriteString(nodes.Render())
	b.WriteString("\n")

	if len(r.Queries) > 0 {
		queries := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("QUERY", "KIND", "ORIGIN", "EULER°", "VALUE").
			StyleFunc(queryStyles(r.Queries))
		for _, q := range r.Queries {
			if q.Err != "" {
				queries.Row(q.Name, string(q.Kind), q.Err, "", "")
				continue
			}
			queries.Row(q.Name, string(q.Kind), fmtVec(q.Origin), fmtVec(q.EulerDeg), fmt.Sprintf("%.6g", q.Value))
		}
		b.WriteString(queries.Render())
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("bounds %s .. %s  elapsed %s\n", fmtVec(r.BoundsMin), fmtVec(r.BoundsMax), r.Elapsed))
	return b.String()
}

// queryStyles picks cell styles for the query table. The table numbers the
// header as row 0, so query i is drawn on row i+1.
func queryStyles(queries []QueryReport) table.StyleFunc {
	return func(row, col int) lipgloss.Style {
		if row == 0 {
			return headerStyle
		}
		if row <= len(queries) && queries[row-1].Err != "" {
			return errStyle
		}
		return cellStyle
	}
}

func fmtVec(v [3]float64) string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v[0], v[1], v[2])
}
