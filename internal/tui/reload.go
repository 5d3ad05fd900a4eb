package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shapeshifter/internal/project"
)

type reloadMsg project.Event

// waitReload blocks for the next project change. A closed channel ends the
// loop.
func waitReload(ch <-chan project.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(ev)
	}
}
