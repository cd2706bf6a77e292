package rowsave

// Model is implemented by values that declare their own table definition.
// Values that don't implement it get one derived from their db struct tags.
type Model interface {
	GetTableDef() TableDef
}

// InsertGenerator lets a model produce its own insert parts instead of going
// through the tag-driven extraction. The three slices must be aligned
// positionally.
type InsertGenerator interface {
	GenerateInsertParts() (columns []string, placeholders []string, args []any)
}
