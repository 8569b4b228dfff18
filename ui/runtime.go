package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"list-root/casc/centry"
)

func Start(entries []centry.Entry) error {
	tableBrowser := CreateTableBrowser(entries)
	if err := tea.NewProgram(tableBrowser, tea.WithAltScreen()).Start(); err != nil {
		err := errors.Wrap(err, "ui.Start error")
		return err
	}
	return nil
}
