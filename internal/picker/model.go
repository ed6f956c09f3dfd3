// Package picker is the interactive fuzzy file picker with a preview pane.
// All model state is mutated only on the bubbletea update loop; preview
// rendering runs in the background and reports back with a message.
package picker

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krivenkov/pdfpeek/internal/preview"
)

// previewDoneMsg carries a finished preview back onto the update loop. The
// request ID guards against stale results arriving after the user has moved
// on to another entry.
type previewDoneMsg struct {
	requestID int
	result    preview.Result
}

// previewRefreshMsg asks the update loop to start a preview for the current
// selection. Init dispatches it instead of starting the preview itself, so
// the request ID bump happens on the model the program actually keeps.
type previewRefreshMsg struct{}

// Model is the bubbletea model for the picker.
type Model struct {
	orch   *preview.Orchestrator
	logger *slog.Logger

	cwd        string
	entries    []Entry
	visible    []int // indices into entries, filtered and ranked
	selected   int   // index into visible
	showHidden bool

	filter       textinput.Model
	previewLines []string
	status       string
	loading      bool
	requestID    int

	width  int
	height int
}

// New creates a picker rooted at startDir.
func New(orch *preview.Orchestrator, startDir string, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if startDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Model{}, err
		}
		startDir = cwd
	}

	entries, err := ListDir(startDir, false)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		orch:    orch,
		logger:  logger,
		cwd:     startDir,
		entries: entries,
		filter:  ti,
		status:  "ready",
	}
	m.refilter()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return previewRefreshMsg{} }
}

// selectedEntry returns the highlighted entry, if any.
func (m Model) selectedEntry() (Entry, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return Entry{}, false
	}
	return m.entries[m.visible[m.selected]], true
}

// refilter recomputes the visible entry set from the filter text, ranked by
// fuzzy score with name order as tie-break.
func (m *Model) refilter() {
	pattern := m.filter.Value()
	type ranked struct {
		idx   int
		score int
	}
	matches := make([]ranked, 0, len(m.entries))
	for i, e := range m.entries {
		if ok, score := Match(pattern, e.Name); ok {
			matches = append(matches, ranked{idx: i, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	m.visible = m.visible[:0]
	for _, r := range matches {
		m.visible = append(m.visible, r.idx)
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// requestPreview starts a background preview for the highlighted entry.
func (m Model) requestPreview() (tea.Cmd, Model) {
	entry, ok := m.selectedEntry()
	if !ok {
		m.previewLines = nil
		m.loading = false
		return nil, m
	}
	if entry.IsDir {
		m.previewLines = []string{entry.Name + "/"}
		m.loading = false
		return nil, m
	}

	m.requestID++
	id := m.requestID
	m.loading = true

	orch := m.orch
	path := entry.Path
	return func() tea.Msg {
		result := orch.Preview(context.Background(), path)
		return previewDoneMsg{requestID: id, result: result}
	}, m
}

// changeDir reloads the entry list for a new directory and clears the filter.
func (m *Model) changeDir(dir string) error {
	entries, err := ListDir(dir, m.showHidden)
	if err != nil {
		return err
	}
	m.cwd = dir
	m.entries = entries
	m.filter.SetValue("")
	m.selected = 0
	m.refilter()
	m.status = dir
	return nil
}

// reload re-reads the current directory keeping the filter.
func (m *Model) reload() {
	entries, err := ListDir(m.cwd, m.showHidden)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.entries = entries
	m.refilter()
}
