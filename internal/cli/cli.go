// Package cli implements zseed's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zseed/internal/batch"
	"github.com/zarlcorp/zseed/internal/config"
	"github.com/zarlcorp/zseed/internal/fixture"
	"github.com/zarlcorp/zseed/internal/generate"
	"github.com/zarlcorp/zseed/internal/scaffold"
	"github.com/zarlcorp/zseed/internal/store"
	"golang.org/x/term"
)

// PasswordFunc supplies the history master password. firstRun is true when
// the history has not been created yet.
type PasswordFunc func(firstRun bool) (string, error)

// Password is the prompt used to unlock the history. Tests replace it.
var Password PasswordFunc = terminalPassword

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) (string, error) {
	pass, err := ReadPassword("history password: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassword("confirm password: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", errors.New("passwords do not match")
	}
	return pass, nil
}

func terminalPassword(firstRun bool) (string, error) {
	if firstRun {
		return ReadNewPassword(os.Stderr)
	}
	return ReadPassword("history password: ", os.Stderr)
}

// OpenStore prompts for the master password and opens the history in dir,
// returning the store and its batches collection.
func OpenStore(dir string) (*zstore.Store, *zstore.Collection[store.Entry], error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	pass, err := Password(!store.IsInitialized(fsys))
	if err != nil {
		return nil, nil, err
	}

	return store.Open(fsys, pass)
}

// Options returns the generation options from cfg.
func Options(cfg config.Config) batch.Options {
	return batch.Options{
		PasswordLength: cfg.PasswordLength,
		PriceMin:       cfg.PriceMin,
		PriceMax:       cfg.PriceMax,
	}
}

// CmdGenerate builds one kind of seed data and prints it.
// Flags: --json, --save, --seed=N, --fixtures=PATH.
func CmdGenerate(w io.Writer, cfg config.Config, kind batch.Kind, args []string) error {
	if v, ok, err := flagValue(args, "--seed"); err != nil {
		return err
	} else if ok {
		if err := cfg.SetSeed(v); err != nil {
			return err
		}
	}
	if v, ok, err := flagValue(args, "--fixtures"); err != nil {
		return err
	} else if ok {
		cfg.FixturesPath = v
	}

	set, err := fixture.LoadFile(cfg.FixturesPath)
	if err != nil {
		return err
	}

	b, err := batch.Build(kind, cfg.Generator(), set, Options(cfg))
	if err != nil {
		return err
	}

	if len(b.Unsafe) > 0 {
		slog.Warn("values contain double quotes, statements will not parse", "kind", kind, "values", b.Unsafe)
	}

	if hasFlag(args, "--json") {
		err = b.WriteJSON(w)
	} else {
		err = b.Write(w)
	}
	if err != nil {
		return err
	}

	if hasFlag(args, "--save") {
		id, err := save(cfg, b)
		if err != nil {
			return fmt.Errorf("save: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", id)
	}

	return nil
}

const (
	// 8 hex characters
	historyIDBytes = 4
	// new ids tried when a generated history id is already taken
	saveAttempts = 5
)

func save(cfg config.Config, b batch.Batch) (string, error) {
	records, err := b.RecordsJSON()
	if err != nil {
		return "", err
	}

	s, col, err := OpenStore(cfg.DataDir)
	if err != nil {
		return "", err
	}
	defer s.Close()

	e := store.Entry{
		Kind:       string(b.Kind),
		Records:    records,
		Statements: b.Statements,
		CreatedAt:  time.Now().UTC(),
	}
	if cfg.HasSeed {
		seed := cfg.Seed
		e.Seed = &seed
	}

	// ids come from crypto/rand even when generation is seeded
	for range saveAttempts {
		if e.ID, err = zcrypto.RandHex(historyIDBytes); err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		err = store.Add(col, e)
		if !errors.Is(err, store.ErrExists) {
			break
		}
	}
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

// CmdHistory lists saved batches, newest first.
func CmdHistory(w io.Writer, cfg config.Config, args []string) error {
	s, col, err := OpenStore(cfg.DataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := col.List()
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	store.Newest(entries)

	if hasFlag(args, "--json") {
		if entries == nil {
			entries = []store.Entry{}
		}
		return printJSON(w, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "no saved batches")
		return nil
	}

	for _, e := range entries {
		seed := "-"
		if e.Seed != nil {
			seed = fmt.Sprint(*e.Seed)
		}
		fmt.Fprintf(w, "  %-10s %-12s %4d rows  seed %-20s %s\n",
			e.ID,
			e.Kind,
			len(e.Statements),
			seed,
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

// CmdShow prints a saved batch.
func CmdShow(w io.Writer, cfg config.Config, id string, args []string) error {
	s, col, err := OpenStore(cfg.DataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := getEntry(col, id)
	if err != nil {
		return fmt.Errorf("show %s: %w", id, err)
	}

	b, err := batch.Restore(batch.Kind(e.Kind), e.Records, e.Statements)
	if err != nil {
		return fmt.Errorf("show %s: %w", id, err)
	}
	if hasFlag(args, "--sql") {
		_, err := fmt.Fprintln(w, b.SQL())
		return err
	}
	if hasFlag(args, "--json") {
		return b.WriteJSON(w)
	}
	return b.Write(w)
}

// CmdForget deletes a saved batch by ID.
func CmdForget(w io.Writer, cfg config.Config, id string) error {
	s, col, err := OpenStore(cfg.DataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	if !store.ValidID(id) {
		return fmt.Errorf("forget %s: %w", id, zstore.ErrNotFound)
	}
	if err := col.Delete(id); err != nil {
		return fmt.Errorf("forget %s: %w", id, err)
	}
	fmt.Fprintf(w, "deleted %s\n", id)
	return nil
}

func getEntry(col *zstore.Collection[store.Entry], id string) (store.Entry, error) {
	if !store.ValidID(id) {
		return store.Entry{}, zstore.ErrNotFound
	}
	return col.Get(id)
}

// CmdScaffold creates a step directory. Flags: --minimal, --dir=PATH.
func CmdScaffold(w io.Writer, cfg config.Config, args []string) error {
	dir := "."
	if v, ok, err := flagValue(args, "--dir"); err != nil {
		return err
	} else if ok {
		dir = v
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scaffold: %w", err)
	}

	layout := scaffold.Full
	if hasFlag(args, "--minimal") {
		layout = scaffold.Minimal
	}

	sc := scaffold.New(zfilesystem.NewOSFileSystem(dir), generate.New(), cfg.Author, cfg.AuthorGithub)
	id, err := sc.Create(layout)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, id)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the value of --name=value or --name value. A flag given
// without a value is an error.
func flagValue(args []string, flag string) (string, bool, error) {
	for i, a := range args {
		name, v, hasEq := strings.Cut(a, "=")
		if !strings.EqualFold(name, flag) {
			continue
		}
		if !hasEq {
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				return "", false, fmt.Errorf("%s needs a value", flag)
			}
			v = args[i+1]
		}
		if v == "" {
			return "", false, fmt.Errorf("%s needs a value", flag)
		}
		return v, true, nil
	}
	return "", false, nil
}

// RunStandalone loads configuration and prints one batch of kind, the way the
// single-purpose binaries run.
func RunStandalone(w io.Writer, kind batch.Kind) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return CmdGenerate(w, cfg, kind, nil)
}
