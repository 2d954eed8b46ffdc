package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"macaron/internal/query"
	"macaron/internal/stats"
	"macaron/internal/store"
	"macaron/internal/task"
	"macaron/internal/ui"
)

type boardModel struct {
	ctx context.Context
	st  *store.Store

	width  int
	height int

	snap  store.Snapshot
	rows  []task.Task
	stats stats.Snapshot

	showArchived bool
	selected     int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snap store.Snapshot
	err  error
}

type toggledMsg struct {
	id  string
	err error
}

type archivedMsg struct {
	id  string
	err error
}

func newBoardModel(ctx context.Context, st *store.Store) boardModel {
	return boardModel{
		ctx:     ctx,
		st:      st,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{snap: m.st.Snapshot()}
	}
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return toggledMsg{id: id, err: m.st.ToggleCompletion(m.ctx, id)}
	}
}

func (m boardModel) archiveCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return archivedMsg{id: id, err: m.st.Archive(m.ctx, []string{id})}
	}
}

func (m *boardModel) rebuildRows() {
	visible := m.snap.Tasks
	if !m.showArchived {
		kept := make([]task.Task, 0, len(visible))
		for _, t := range visible {
			if !t.IsArchived {
				kept = append(kept, t)
			}
		}
		visible = kept
	}
	m.rows = query.Filter(visible, query.Criteria{}, time.Now())
	m.stats = stats.Compute(m.snap.Tasks, time.Now())
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snap = msg.snap
		m.rebuildRows()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Toggled."
		return m, m.loadCmd()
	case archivedMsg:
		if msg.err != nil {
			m.lastLog = "Archive failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Archived."
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "v":
			m.showArchived = !m.showArchived
			m.rebuildRows()
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected < 0 || m.selected >= len(m.rows) {
				return m, nil
			}
			t := m.rows[m.selected]
			m.lastLog = "Toggling " + t.Title + "…"
			return m, m.toggleCmd(t.ID)
		case "a":
			if m.selected < 0 || m.selected >= len(m.rows) {
				return m, nil
			}
			t := m.rows[m.selected]
			if t.IsArchived {
				m.lastLog = "Already archived."
				return m, nil
			}
			return m, m.archiveCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return "Macaron — loading…\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconTask, "Macaron Board"))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(fmt.Sprintf(
		"%d total · %d done · %d pending · %d overdue",
		m.stats.Total, m.stats.Completed, m.stats.Pending, m.stats.Overdue)))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(ui.Muted.Render("No tasks. Add one with `macaron add`."))
		b.WriteString("\n")
	}
	for i, t := range m.rows {
		line := fmt.Sprintf("%s %s %s %s",
			ui.Checkbox(t.IsCompleted),
			t.Title,
			ui.PriorityText(t.Priority),
			ui.Muted.Render(task.CategoryName(m.snap.Categories, t.Category)))
		if t.IsArchived {
			line += " " + ui.Muted.Render(ui.IconArchive)
		}
		if i == m.selected {
			line = ui.SelectedRow.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("space/enter toggle · a archive · v archived · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(ui.Dim.Render(m.lastLog))
	b.WriteString("\n")
	return b.String()
}
