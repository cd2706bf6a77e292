package rowsave

import (
	"fmt"
	"strings"
)

// BuildInsert composes a parameterized single-row insert statement for v
// and the argument slice bound positionally to its placeholders. The
// statement uses ? placeholders; rebind for the target dialect before
// executing it yourself.
func BuildInsert(v any) (string, []any, error) {
	def, err := TableDefOf(v)
	if err != nil {
		return "", nil, err
	}

	if gen, ok := v.(InsertGenerator); ok {
		columns, placeholders, args := gen.GenerateInsertParts()
		if len(columns) == 0 {
			return "", nil, fmt.Errorf("%w for table %s", ErrNoColumns, def.FullName())
		}

		qry := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			def.FullName(), strings.Join(columns, ", "), strings.Join(placeholders, ", "))
		return qry, args, nil
	}

	entries, err := insertFields(v)
	if err != nil {
		return "", nil, err
	}

	if len(entries) == 0 {
		return "", nil, fmt.Errorf("%w for table %s", ErrNoColumns, def.FullName())
	}

	columns := Map(entries, func(e fieldEntry) string {
		return e.column
	})
	args := Map(entries, func(e fieldEntry) any {
		return e.value
	})
	placeholders := Map(entries, func(e fieldEntry) string {
		return "?"
	})

	qry := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		def.FullName(), strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	return qry, args, nil
}

// buildMultiInsert composes one multi-row insert for values sharing a table
// and column set. The first row fixes the column list; a row populating a
// different set is an error since rows cannot shift alignment mid-statement.
func buildMultiInsert(values []any) (string, []any, error) {
	if len(values) == 0 {
		return "", nil, fmt.Errorf("%w: empty value list", ErrNoColumns)
	}

	def, err := TableDefOf(values[0])
	if err != nil {
		return "", nil, err
	}

	var columns []string
	var args []any
	var groups []string
	for i, value := range values {
		entries, err := insertFields(value)
		if err != nil {
			return "", nil, err
		}

		if i == 0 {
			if len(entries) == 0 {
				return "", nil, fmt.Errorf("%w for table %s", ErrNoColumns, def.FullName())
			}

			columns = Map(entries, func(e fieldEntry) string {
				return e.column
			})
		}

		if len(entries) != len(columns) {
			return "", nil, fmt.Errorf("row %d populates %d of %d columns (%s)",
				i, len(entries), len(columns), strings.Join(columns, ", "))
		}

		for j, e := range entries {
			if e.column != columns[j] {
				if !SliceContains(columns, e.column) {
					return "", nil, fmt.Errorf("row %d populates column %s absent from row 0", i, e.column)
				}
				return "", nil, fmt.Errorf("row %d column order mismatch at %s", i, e.column)
			}
			args = append(args, e.value)
		}

		ph := Map(entries, func(e fieldEntry) string {
			return "?"
		})
		groups = append(groups, fmt.Sprintf("(%s)", strings.Join(ph, ", ")))
	}

	qry := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		def.FullName(), strings.Join(columns, ", "), strings.Join(groups, ", "))

	return qry, args, nil
}
