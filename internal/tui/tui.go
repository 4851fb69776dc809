// Package tui implements the root Bubble Tea model for zseed.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zseed/internal/batch"
	"github.com/zarlcorp/zseed/internal/fixture"
	"github.com/zarlcorp/zseed/internal/generate"
)

type viewID int

const (
	viewMenu viewID = iota
	viewBatch
)

// default size until the first WindowSizeMsg arrives
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the root TUI model.
type Model struct {
	version string
	gen     *generate.Generator
	set     fixture.Set
	opts    batch.Options

	active viewID
	menu   menuModel
	batch  batchModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version string, gen *generate.Generator, set fixture.Set, opts batch.Options) Model {
	return Model{
		version: version,
		gen:     gen,
		set:     set,
		opts:    opts,
		active:  viewMenu,
		menu:    newMenuModel(version),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.batch = m.batch.resize(msg.Width, msg.Height)
		return m, nil

	case navigateMsg:
		m.active = msg.view
		m.menu.err = ""
		return m, nil

	case generateMsg:
		return m.generate(msg.kind)

	case copiedMsg, flashMsg:
		var cmd tea.Cmd
		m.batch, cmd = m.batch.Update(msg)
		return m, cmd
	}

	return m.updateActive(msg)
}

func (m Model) generate(kind batch.Kind) (tea.Model, tea.Cmd) {
	b, err := batch.Build(kind, m.gen, m.set, m.opts)
	if err != nil {
		m.menu.err = err.Error()
		m.active = viewMenu
		return m, nil
	}

	m.batch = newBatchModel(b, m.width, m.height)
	m.active = viewBatch
	return m, nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewBatch:
		m.batch, cmd = m.batch.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.active == viewMenu {
		return m.menu.View()
	}

	header := "  " + zstyle.Title.Render("zseed") + " " + zstyle.MutedText.Render(viewTitle(m.batch.batch.Kind))
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + m.batch.View() + "\n" + footer + "\n"
}

// viewTitle returns the display title for a batch view.
func viewTitle(kind batch.Kind) string {
	switch kind {
	case batch.Products:
		return "Products"
	case batch.Credentials:
		return "Credentials"
	case batch.Profiles:
		return "Profiles"
	}
	return ""
}

// helpFor returns the key hints for the footer.
func helpFor(id viewID) []zstyle.HelpPair {
	if id == viewBatch {
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "scroll"},
			{Key: "n", Desc: "regenerate"},
			{Key: "c", Desc: "copy sql"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return []zstyle.HelpPair{
		{Key: "j/k", Desc: "navigate"},
		{Key: "enter", Desc: "select"},
		{Key: "q", Desc: "quit"},
	}
}
