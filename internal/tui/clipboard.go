package tui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	n   int
	err error
}

// clipboardCommand returns the platform tool that reads stdin into the
// system clipboard.
func clipboardCommand() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "windows":
		return exec.Command("clip"), nil
	case "linux":
		for _, c := range [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		} {
			if _, err := exec.LookPath(c[0]); err == nil {
				return exec.Command(c[0], c[1:]...), nil
			}
		}
		return nil, fmt.Errorf("no clipboard tool: install wl-copy, xclip or xsel")
	}
	return nil, fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
}

// copyStatements writes the statements to the clipboard, one per line.
func copyStatements(stmts []string) tea.Cmd {
	return func() tea.Msg {
		cmd, err := clipboardCommand()
		if err != nil {
			return copiedMsg{err: err}
		}

		cmd.Stdin = strings.NewReader(strings.Join(stmts, "\n") + "\n")
		if err := cmd.Run(); err != nil {
			return copiedMsg{err: fmt.Errorf("clipboard: %w", err)}
		}
		return copiedMsg{n: len(stmts)}
	}
}
