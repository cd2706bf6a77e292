package rowsave

import "fmt"

// Record is an explicit attribute bag bound to a table definition. Columns
// are assigned incrementally and possibly incompletely; only assigned
// columns that appear in the declared column list make it into the saved
// row, in declared order.
type Record struct {
	def    TableDef
	fields map[string]any
}

func NewRecord(def TableDef) *Record {
	return &Record{
		def:    def,
		fields: make(map[string]any),
	}
}

func (r Record) GetTableDef() TableDef {
	return r.def
}

// Set assigns a column value. An assignment outside the declared column
// list stays in the bag but is never saved.
func (r *Record) Set(column string, value any) *Record {
	r.fields[column] = value
	return r
}

func (r *Record) Unset(column string) {
	delete(r.fields, column)
}

func (r Record) Get(column string) (any, bool) {
	val, ok := r.fields[column]
	return val, ok
}

func (r Record) insertFields() ([]fieldEntry, error) {
	var entries []fieldEntry
	for _, col := range r.def.Columns {
		val, ok := r.fields[col]
		if !ok {
			continue
		}

		resolved, set, err := resolveValue(val)
		if err != nil {
			return nil, fmt.Errorf("resolve value for column %s: %w", col, err)
		}

		if !set {
			continue
		}

		entries = append(entries, fieldEntry{column: col, value: resolved})
	}

	return entries, nil
}
