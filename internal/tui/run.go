package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"careerpro/internal/config"
	"careerpro/internal/errors"
	"careerpro/internal/session"
	"careerpro/internal/storage"
)

// Run starts the editing view and blocks until it exits. Session changes
// flow through the autosaver; completed saves are reported back into the
// program so the status bar can show the save time.
func Run(ctx context.Context, cfg *config.Config, logger *errors.Logger, sess *session.Session, autosaver *storage.Autosaver) error {
	model := New(ctx, cfg, logger, sess)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	sess.OnChange(autosaver.Notify)
	autosaver.OnSave(func(at time.Time) {
		p.Send(SavedMsg{At: at})
	})

	_, err := p.Run()
	// Flush before returning so the last keystrokes are never lost to the
	// debounce window.
	autosaver.Flush()
	return err
}
