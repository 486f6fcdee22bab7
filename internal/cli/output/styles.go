// Package output formats CLI output: styled banners and summary tables.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	slate300 = lipgloss.Color("#cbd5e1")
	slate500 = lipgloss.Color("#64748b")
	slate700 = lipgloss.Color("#334155")
)

// Styles groups the lipgloss styles used by the commands.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	URL     lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}

// NewStyles returns the default style set.
func NewStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(slate300),
		Muted:   lipgloss.NewStyle().Foreground(slate500),
		URL:     lipgloss.NewStyle().Underline(true).Foreground(slate300),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#d97706")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(slate700).
			Padding(0, 2),
	}
}

// Banner renders the boxed startup message for the dev server.
func (s *Styles) Banner(title, url string, lines ...string) string {
	body := []string{
		s.Title.Render(title),
		s.URL.Render(url),
	}
	for _, line := range lines {
		body = append(body, s.Muted.Render(line))
	}
	return s.Box.Render(strings.Join(body, "\n"))
}

// FileRow is one line of a build summary.
type FileRow struct {
	Path string
	Size int64
}

// RenderFiles writes a summary table of written files with a total row.
func RenderFiles(w io.Writer, rows []FileRow) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.AppendHeader(table.Row{"File", "Size"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	var total int64
	for _, r := range rows {
		t.AppendRow(table.Row{r.Path, HumanSize(r.Size)})
		total += r.Size
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d files", len(rows)), HumanSize(total)})
	t.Render()
}

// HumanSize formats a byte count as B, KB or MB.
func HumanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
