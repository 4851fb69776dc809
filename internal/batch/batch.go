// Package batch builds a kind of seed data into records plus rendered SQL and
// writes the two-section report.
package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zarlcorp/zseed/internal/fixture"
	"github.com/zarlcorp/zseed/internal/generate"
	"github.com/zarlcorp/zseed/internal/sqlgen"
)

// Kind names a generator.
type Kind string

const (
	Products    Kind = "products"
	Credentials Kind = "credentials"
	Profiles    Kind = "profiles"
)

// Kinds lists every generator in menu order.
var Kinds = []Kind{Products, Credentials, Profiles}

// ErrUnknownKind is returned for a kind that has no generator.
var ErrUnknownKind = errors.New("unknown kind")

// ParseKind resolves a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Table returns the SQL table the kind inserts into.
func (k Kind) Table() string {
	if k == Products {
		return "Product"
	}
	return "User"
}

// Title returns the heading used for the record dump.
func (k Kind) Title() string {
	switch k {
	case Products:
		return "product data"
	case Credentials, Profiles:
		return "user credentials"
	}
	return string(k)
}

// Options tune generation.
type Options struct {
	PasswordLength int
	PriceMin       int
	PriceMax       int
}

// DefaultOptions returns the built-in generation settings.
func DefaultOptions() Options {
	return Options{
		PasswordLength: generate.DefaultPasswordLength,
		PriceMin:       generate.DefaultPriceMin,
		PriceMax:       generate.DefaultPriceMax,
	}
}

// Batch is one generator run.
type Batch struct {
	Kind       Kind     `json:"kind"`
	Records    any      `json:"records"`
	Statements []string `json:"statements"`
	// Unsafe lists string values that break their statements.
	Unsafe []string `json:"-"`
}

// Build runs the generator for kind over the fixture set.
func Build(kind Kind, g *generate.Generator, set fixture.Set, opts Options) (Batch, error) {
	b := Batch{Kind: kind}

	var err error
	switch kind {
	case Products:
		rows := g.Products(set.Products, opts.PriceMin, opts.PriceMax)
		b.Records = rows
		b.Unsafe = sqlgen.Unsafe(rows)
		b.Statements, err = sqlgen.Statements(kind.Table(), rows)

	case Credentials:
		var rows []generate.Credential
		rows, err = g.Credentials(set.CredentialUsernames, opts.PasswordLength)
		if err == nil {
			b.Records = rows
			b.Unsafe = sqlgen.Unsafe(rows)
			b.Statements, err = sqlgen.Statements(kind.Table(), rows)
		}

	case Profiles:
		var rows []generate.Profile
		rows, err = g.Profiles(set.ProfileUsernames, set.Address, opts.PasswordLength)
		if err == nil {
			b.Records = rows
			b.Unsafe = sqlgen.Unsafe(rows)
			b.Statements, err = sqlgen.Statements(kind.Table(), rows)
		}

	default:
		return Batch{}, fmt.Errorf("build: %w %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return Batch{}, fmt.Errorf("build %s: %w", kind, err)
	}

	return b, nil
}

// Restore rebuilds a batch from a saved record dump and its statements.
func Restore(kind Kind, records []byte, statements []string) (Batch, error) {
	b := Batch{Kind: kind, Statements: statements}

	var err error
	switch kind {
	case Products:
		b.Records, err = decodeRows[generate.Product](records)
	case Credentials:
		b.Records, err = decodeRows[generate.Credential](records)
	case Profiles:
		b.Records, err = decodeRows[generate.Profile](records)
	default:
		return Batch{}, fmt.Errorf("restore: %w %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return Batch{}, fmt.Errorf("restore %s: %w", kind, err)
	}

	return b, nil
}

func decodeRows[R any](data []byte) ([]R, error) {
	var rows []R
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SQL returns the statements joined by newlines.
func (b Batch) SQL() string {
	return strings.Join(b.Statements, "\n")
}

// RecordsJSON returns the records as compact JSON with symbols left
// unescaped.
func (b Batch) RecordsJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b.Records); err != nil {
		return nil, fmt.Errorf("encode %s records: %w", b.Kind, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write prints the record dump, a blank line, then the statements.
func (b Batch) Write(w io.Writer) error {
	dump, err := b.RecordsJSON()
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	_, err = fmt.Fprintf(w, "Generated %s:\n%s\n\nGenerated SQL statements:\n%s\n",
		b.Kind.Title(), dump, b.SQL())
	return err
}

// WriteJSON prints the batch as a single indented JSON document.
func (b Batch) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("write %s: encode json: %w", b.Kind, err)
	}
	return nil
}
