package sqlgen

import (
	"errors"
	"strings"
	"testing"
)

type item struct {
	id    int
	name  string
	price int
}

func (item) Columns() []string { return []string{"id", "name", "price"} }

func (i item) Values() []any { return []any{i.id, i.name, i.price} }

type broken struct{}

func (broken) Columns() []string { return []string{"a", "b"} }

func (broken) Values() []any { return []any{1} }

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		columns []string
		values  []any
		want    string
	}{
		{
			name:    "product",
			table:   "Product",
			columns: []string{"id", "name", "description", "price"},
			values:  []any{1, "Wireless Mouse", "Ergonomic wireless mouse.", 42},
			want:    `INSERT INTO Product (id, name, description, price) VALUES (1, "Wireless Mouse", "Ergonomic wireless mouse.", 42);`,
		},
		{
			name:    "credential",
			table:   "User",
			columns: []string{"username", "password"},
			values:  []any{"alice99", "aB3$x"},
			want:    `INSERT INTO User (username, password) VALUES ("alice99", "aB3$x");`,
		},
		{
			name:    "wide integers",
			table:   "T",
			columns: []string{"a", "b", "c"},
			values:  []any{int64(-7), uint32(8), uint64(9)},
			want:    `INSERT INTO T (a, b, c) VALUES (-7, 8, 9);`,
		},
		{
			name:    "empty string",
			table:   "T",
			columns: []string{"a"},
			values:  []any{""},
			want:    `INSERT INTO T (a) VALUES ("");`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Insert(tt.table, tt.columns, tt.values)
			if err != nil {
				t.Fatalf("Insert: %v", err)
			}
			if got != tt.want {
				t.Errorf("Insert =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestInsertDoesNotEscape(t *testing.T) {
	got, err := Insert("T", []string{"a"}, []any{`say "hi"`})
	if err != nil {
		t.Fatal(err)
	}
	if want := `INSERT INTO T (a) VALUES ("say "hi"");`; got != want {
		t.Errorf("Insert = %s, want %s", got, want)
	}
}

func TestInsertUnsupportedValue(t *testing.T) {
	for _, v := range []any{1.5, nil, struct{}{}, []byte("x"), true} {
		_, err := Insert("T", []string{"a"}, []any{v})
		if !errors.Is(err, ErrUnsupportedValue) {
			t.Errorf("Insert(%T) err = %v, want ErrUnsupportedValue", v, err)
		}
	}
}

func TestInsertColumnMismatch(t *testing.T) {
	_, err := Insert("T", []string{"a", "b"}, []any{1})
	if !errors.Is(err, ErrColumnMismatch) {
		t.Errorf("err = %v, want ErrColumnMismatch", err)
	}
}

func TestStatements(t *testing.T) {
	rows := []item{
		{1, "pen", 15},
		{2, "ink", 230},
		{3, "pad", 99},
	}

	stmts, err := Statements("Product", rows)
	if err != nil {
		t.Fatalf("Statements: %v", err)
	}
	if len(stmts) != len(rows) {
		t.Fatalf("got %d statements, want %d", len(stmts), len(rows))
	}

	for i, s := range stmts {
		r := rows[i]
		if !strings.HasPrefix(s, "INSERT INTO Product (id, name, price) VALUES (") {
			t.Errorf("statement %d has wrong prefix: %s", i, s)
		}
		if !strings.HasSuffix(s, ");") {
			t.Errorf("statement %d not terminated: %s", i, s)
		}
		// numbers bare, strings quoted, in column order
		want := "(" + itoa(r.id) + `, "` + r.name + `", ` + itoa(r.price) + ");"
		if !strings.HasSuffix(s, want) {
			t.Errorf("statement %d = %s, want suffix %s", i, s, want)
		}
	}
}

func TestStatementsEmpty(t *testing.T) {
	stmts, err := Statements[item]("Product", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 0 {
		t.Errorf("got %d statements for no rows", len(stmts))
	}
}

func TestStatementsPropagatesRowError(t *testing.T) {
	_, err := Statements("T", []broken{{}})
	if !errors.Is(err, ErrColumnMismatch) {
		t.Fatalf("err = %v, want ErrColumnMismatch", err)
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Errorf("error %q should name the row", err)
	}
}

func TestUnsafe(t *testing.T) {
	rows := []item{
		{1, "fine", 10},
		{2, `6" ruler`, 10},
	}
	bad := Unsafe(rows)
	if len(bad) != 1 || bad[0] != `6" ruler` {
		t.Errorf("Unsafe = %v, want [6\" ruler]", bad)
	}
}

func itoa(n int) string {
	s, _ := literal(n)
	return s
}
