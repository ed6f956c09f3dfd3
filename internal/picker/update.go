package picker

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krivenkov/pdfpeek/internal/opener"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "down", "ctrl+n":
			if m.selected < len(m.visible)-1 {
				m.selected++
				cmd, next := m.requestPreview()
				return next, cmd
			}
			return m, nil

		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
				cmd, next := m.requestPreview()
				return next, cmd
			}
			return m, nil

		case "enter":
			return m.activate()

		case "ctrl+h":
			m.showHidden = !m.showHidden
			m.reload()
			cmd, next := m.requestPreview()
			return next, cmd

		case "ctrl+r":
			m.reload()
			m.status = "reloaded"
			cmd, next := m.requestPreview()
			return next, cmd

		case "backspace":
			if m.filter.Value() == "" {
				parent := filepath.Dir(m.cwd)
				if parent != m.cwd {
					if err := m.changeDir(parent); err != nil {
						m.status = err.Error()
						return m, nil
					}
					cmd, next := m.requestPreview()
					return next, cmd
				}
				return m, nil
			}
		}

		// Everything else edits the filter.
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refilter()
		previewCmd, next := m.requestPreview()
		return next, tea.Batch(cmd, previewCmd)

	case previewRefreshMsg:
		cmd, next := m.requestPreview()
		return next, cmd

	case previewDoneMsg:
		if msg.requestID != m.requestID {
			return m, nil
		}
		m.loading = false
		m.previewLines = msg.result.Lines
		return m, nil
	}

	return m, nil
}

// activate opens the highlighted entry: directories are entered, files are
// handed to the OS default application and the picker closes. A failed spawn
// keeps the picker open and reports the error instead of ignoring it.
func (m Model) activate() (tea.Model, tea.Cmd) {
	entry, ok := m.selectedEntry()
	if !ok {
		return m, nil
	}
	if entry.IsDir {
		if err := m.changeDir(entry.Path); err != nil {
			m.status = err.Error()
			return m, nil
		}
		cmd, next := m.requestPreview()
		return next, cmd
	}

	if err := opener.Open(entry.Path); err != nil {
		m.logger.Warn("open failed", "path", entry.Path, "error", err)
		m.status = err.Error()
		return m, nil
	}
	return m, tea.Quit
}
