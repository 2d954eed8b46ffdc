package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"macaron/internal/store"
)

func RunBoard(ctx context.Context, st *store.Store, out io.Writer) error {
	m := newBoardModel(ctx, st)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
