// Package sqlgen renders records as SQL INSERT statements.
//
// String values are wrapped in double quotes verbatim and integers are
// written bare. Values are not escaped: a string containing a double quote
// produces a broken statement. Fixture data is expected to be quote-free;
// Unsafe reports the values that would break.
package sqlgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedValue is returned for a value that is neither a string
	// nor an integer.
	ErrUnsupportedValue = errors.New("unsupported value type")
	// ErrColumnMismatch is returned when a row's value count differs from
	// its column count.
	ErrColumnMismatch = errors.New("column count does not match value count")
)

// Row is a record that can be rendered as an INSERT.
type Row interface {
	Columns() []string
	Values() []any
}

// Insert renders a single INSERT statement.
func Insert(table string, columns []string, values []any) (string, error) {
	if len(columns) != len(values) {
		return "", fmt.Errorf("insert into %s: %w: %d columns, %d values",
			table, ErrColumnMismatch, len(columns), len(values))
	}

	lits := make([]string, len(values))
	for i, v := range values {
		lit, err := literal(v)
		if err != nil {
			return "", fmt.Errorf("insert into %s: column %s: %w", table, columns[i], err)
		}
		lits[i] = lit
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(columns, ", "), strings.Join(lits, ", ")), nil
}

// Statements renders one INSERT per row, in row order.
func Statements[R Row](table string, rows []R) ([]string, error) {
	out := make([]string, 0, len(rows))
	for i, r := range rows {
		stmt, err := Insert(table, r.Columns(), r.Values())
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, stmt)
	}
	return out, nil
}

// Unsafe returns the string values among rows that contain a double quote
// and would therefore corrupt the rendered statement.
func Unsafe[R Row](rows []R) []string {
	var bad []string
	for _, r := range rows {
		for _, v := range r.Values() {
			if s, ok := v.(string); ok && strings.ContainsRune(s, '"') {
				bad = append(bad, s)
			}
		}
	}
	return bad
}

func literal(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return `"` + x + `"`, nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
