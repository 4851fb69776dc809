package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zseed/internal/batch"
)

// lines taken by header, separator, summary, flash and footer
const batchChrome = 9

var (
	keyRegenerate = key.NewBinding(key.WithKeys("n"))
	keyCopy       = key.NewBinding(key.WithKeys("c"))
)

// flashMsg clears the status line.
type flashMsg struct{}

// batchModel shows one generated batch as scrollable SQL.
type batchModel struct {
	batch    batch.Batch
	viewport viewport.Model
	flash    string
	flashErr bool
}

func newBatchModel(b batch.Batch, width, height int) batchModel {
	vp := viewport.New(width, viewportHeight(height))
	vp.SetContent(b.SQL())
	return batchModel{batch: b, viewport: vp}
}

func viewportHeight(height int) int {
	return max(height-batchChrome, 3)
}

func (m batchModel) resize(width, height int) batchModel {
	m.viewport.Width = width
	m.viewport.Height = viewportHeight(height)
	return m
}

func (m batchModel) Update(msg tea.Msg) (batchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case flashMsg:
		m.flash = ""
		m.flashErr = false
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.setFlash("copy: "+msg.err.Error(), true), clearFlashAfter()
		}
		return m.setFlash(fmt.Sprintf("copied %d statements", msg.n), false), clearFlashAfter()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, zstyle.KeyQuit):
			return m, tea.Quit
		case key.Matches(msg, zstyle.KeyBack):
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		case key.Matches(msg, keyRegenerate):
			kind := m.batch.Kind
			return m, func() tea.Msg { return generateMsg{kind: kind} }
		case key.Matches(msg, keyCopy):
			return m, copyStatements(m.batch.Statements)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m batchModel) setFlash(text string, isErr bool) batchModel {
	m.flash = text
	m.flashErr = isErr
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m batchModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)

	var b strings.Builder
	summary := fmt.Sprintf("%d rows into %s", len(m.batch.Statements), m.batch.Kind.Table())
	b.WriteString(indent.Render(zstyle.Subtitle.Render(summary)) + "\n\n")
	b.WriteString(m.viewport.View() + "\n")

	pct := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	b.WriteString(indent.Render(zstyle.MutedText.Render(pct)) + "\n")

	switch {
	case m.flash == "":
	case m.flashErr:
		b.WriteString(indent.Render(zstyle.StatusErr.Render(m.flash)) + "\n")
	default:
		b.WriteString(indent.Render(zstyle.StatusOK.Render(m.flash)) + "\n")
	}

	return b.String()
}
