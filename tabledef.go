package rowsave

import "fmt"

// TableDef describes the destination of a save: the relation name and the
// ordered list of columns a model intends to persist. Declared once per
// model, never mutated.
type TableDef struct {
	Schema   string
	Name     string
	KeyField string
	Columns  []string
}

func (td TableDef) FullName() string {
	if td.Schema != "" {
		return fmt.Sprintf("%s.%s", td.Schema, td.Name)
	}

	return td.Name
}
