package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zseed/internal/batch"
	"github.com/zarlcorp/zseed/internal/cli"
	"github.com/zarlcorp/zseed/internal/config"
	"github.com/zarlcorp/zseed/internal/fixture"
	"github.com/zarlcorp/zseed/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zseed"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	fail := func(err error) {
		fmt.Fprintf(os.Stderr, "zseed: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	if len(os.Args) > 1 {
		if err := runCLI(ctx, cfg, os.Args[1], os.Args[2:]); err != nil {
			fail(err)
		}
		_ = app.Close()
		return
	}

	if err := runTUI(cfg); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cfg config.Config, cmd string, args []string) error {
	if kind, err := batch.ParseKind(cmd); err == nil {
		return cli.CmdGenerate(os.Stdout, cfg, kind, args)
	}

	switch cmd {
	case "version":
		fmt.Printf("zseed %s\n", version)
		return nil
	case "history":
		return cli.CmdHistory(os.Stdout, cfg, args)
	case "show":
		if len(args) < 1 {
			return fmt.Errorf("usage: zseed show <id> [--sql|--json]")
		}
		return cli.CmdShow(os.Stdout, cfg, args[0], args[1:])
	case "forget":
		if len(args) < 1 {
			return fmt.Errorf("usage: zseed forget <id>")
		}
		return cli.CmdForget(os.Stdout, cfg, args[0])
	case "scaffold":
		return cli.CmdScaffold(os.Stdout, cfg, args)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func runTUI(cfg config.Config) error {
	set, err := fixture.LoadFile(cfg.FixturesPath)
	if err != nil {
		return err
	}

	m := tui.New(version, cfg.Generator(), set, cli.Options(cfg))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
