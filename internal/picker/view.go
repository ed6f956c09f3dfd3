package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	clrAccent   = lipgloss.Color("105")
	clrAccentFg = lipgloss.Color("231")
	clrDir      = lipgloss.Color("75")
	clrMuted    = lipgloss.Color("244")
	clrDim      = lipgloss.Color("238")
	clrBorder   = lipgloss.Color("237")
	clrLoading  = lipgloss.Color("214")

	selectedStyle = lipgloss.NewStyle().Foreground(clrAccentFg).Background(clrAccent).Bold(true)
	dirStyle      = lipgloss.NewStyle().Foreground(clrDir).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(clrMuted)
	dimStyle      = lipgloss.NewStyle().Foreground(clrDim)
	loadingStyle  = lipgloss.NewStyle().Foreground(clrLoading)
	borderStyle   = lipgloss.NewStyle().Foreground(clrBorder)
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return loadingStyle.Render("loading…")
	}

	listW := max(26, m.width/3)
	previewW := m.width - listW - 1
	bodyH := max(4, m.height-3) // top bar, filter line, status line

	topBar := m.renderTopBar(m.width)
	listPane := m.renderList(listW, bodyH)
	previewPane := m.renderPreview(previewW, bodyH)

	sep := borderStyle.Render("│")
	sepLines := make([]string, bodyH)
	for i := range sepLines {
		sepLines[i] = sep
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listPane,
		strings.Join(sepLines, "\n"),
		previewPane,
	)

	statusLine := m.renderStatusLine(m.width)
	return topBar + "\n" + body + "\n" + m.filter.View() + "\n" + statusLine
}

func (m Model) renderTopBar(width int) string {
	count := fmt.Sprintf("%d/%d", len(m.visible), len(m.entries))
	if m.showHidden {
		count += " (hidden shown)"
	}
	left := trimVisual(m.cwd, max(4, width-len(count)-3))
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(count)-2)
	return lipgloss.NewStyle().Width(width).Background(clrDim).PaddingLeft(1).
		Render(left + strings.Repeat(" ", gap) + mutedStyle.Render(count))
}

func (m Model) renderList(w, h int) string {
	lines := make([]string, 0, h)
	if len(m.visible) == 0 {
		lines = append(lines, mutedStyle.Render("  (no matches)"))
	} else {
		start, end := visibleWindow(m.selected, len(m.visible), h)
		for i := start; i < end; i++ {
			e := m.entries[m.visible[i]]
			name := e.Name
			if e.IsDir {
				name += "/"
			}
			row := trimVisual("  "+name, w)
			switch {
			case i == m.selected:
				row = selectedStyle.Render(padRight(row, w))
			case e.IsDir:
				row = dirStyle.Render(row)
			}
			lines = append(lines, row)
		}
	}
	return lipgloss.NewStyle().Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

func (m Model) renderPreview(w, h int) string {
	if m.loading {
		return lipgloss.NewStyle().Width(w).Height(h).
			Render(loadingStyle.Render("  rendering preview…"))
	}
	lines := m.previewLines
	if len(lines) == 0 {
		lines = []string{mutedStyle.Render("  (no preview)")}
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = trimVisual(" "+line, w)
	}
	return lipgloss.NewStyle().Width(w).Height(h).Render(strings.Join(trimmed, "\n"))
}

func (m Model) renderStatusLine(width int) string {
	status := trimVisual(m.status, max(1, width-2))
	return lipgloss.NewStyle().Width(width).Background(clrDim).PaddingLeft(1).
		Render(mutedStyle.Render(status))
}

// visibleWindow returns the [start, end) slice of rows to show, keeping the
// selection roughly centred.
func visibleWindow(selected, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := selected - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
		start = max(0, end-height)
	}
	return start, end
}

// trimVisual truncates s to at most n visible terminal columns, appending
// "…" when truncated.
func trimVisual(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	var sb strings.Builder
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > n-1 {
			sb.WriteRune('…')
			break
		}
		sb.WriteRune(r)
		used += rw
	}
	return sb.String()
}

func padRight(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}
