package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zseed/internal/batch"
)

type menuItem struct {
	label string
	kind  batch.Kind
}

var menuItems = []menuItem{
	{"Generate products", batch.Products},
	{"Generate credentials", batch.Credentials},
	{"Generate profiles", batch.Profiles},
	{"Quit", ""},
}

// menuModel is the main menu view.
type menuModel struct {
	cursor  int
	version string
	err     string
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// generateMsg asks the root model to build a fresh batch.
type generateMsg struct {
	kind batch.Kind
}

func newMenuModel(version string) menuModel {
	return menuModel{version: version}
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, zstyle.KeyQuit):
		return m, tea.Quit

	case key.Matches(km, zstyle.KeyUp):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(km, zstyle.KeyDown):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(km, zstyle.KeyEnter):
		item := menuItems[m.cursor]
		if item.kind == "" {
			return m, tea.Quit
		}
		return m, func() tea.Msg { return generateMsg{kind: item.kind} }
	}

	return m, nil
}

func (m menuModel) View() string {
	title := zstyle.Title.Render("zseed")
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s %s\n\n", title, ver)

	for i, item := range menuItems {
		if m.cursor == i {
			s += zstyle.Highlight.Render(fmt.Sprintf("  > %s", item.label)) + "\n"
		} else {
			s += fmt.Sprintf("    %s\n", item.label)
		}
	}

	if m.err != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.err) + "\n"
	}

	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}
