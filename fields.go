package rowsave

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// fieldEntry is one populated column on an instance, in declared order.
type fieldEntry struct {
	column string
	value  any
}

// Keys returns the declared columns currently populated on v, in declared
// order. Populated attributes whose name is not in the declared column list
// are silently excluded.
func Keys(v any) ([]string, error) {
	entries, err := insertFields(v)
	if err != nil {
		return nil, err
	}

	return Map(entries, func(e fieldEntry) string {
		return e.column
	}), nil
}

// Values returns the values matching Keys, same order, same length.
func Values(v any) ([]any, error) {
	entries, err := insertFields(v)
	if err != nil {
		return nil, err
	}

	return Map(entries, func(e fieldEntry) any {
		return e.value
	}), nil
}

// KeyString renders Keys as a single display string, e.g. "name, birthday".
func KeyString(v any) (string, error) {
	keys, err := Keys(v)
	if err != nil {
		return "", err
	}

	return strings.Join(keys, ", "), nil
}

// TableDefOf resolves the table definition for v. Models supply their own;
// anything else gets one derived from its db struct tags, with the table
// name snake-cased from the type name.
func TableDefOf(v any) (TableDef, error) {
	if m, ok := v.(Model); ok {
		return m.GetTableDef(), nil
	}

	rt := reflect.TypeOf(v)
	if rt == nil {
		return TableDef{}, fmt.Errorf("%w: nil value", ErrNotMapped)
	}

	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}

	if rt.Kind() != reflect.Struct {
		return TableDef{}, fmt.Errorf("%w: %s", ErrNotMapped, rt.Kind().String())
	}

	def := TableDef{Name: strcase.ToSnake(rt.Name())}
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		tagValue, ok := field.Tag.Lookup("db")
		if !ok {
			continue
		}

		name, isAuto, isKey := ParseDBTag(tagValue)
		if name == "" || name == "-" {
			continue
		}

		if isKey && def.KeyField == "" {
			def.KeyField = name
		}

		if !isAuto {
			def.Columns = append(def.Columns, name)
		}
	}

	return def, nil
}

// ParseDBTag splits a db tag of the form "name,auto key" into the column
// name and its flags.
func ParseDBTag(value string) (name string, isAuto bool, isKey bool) {
	tagArr := strings.Split(value, ",")
	if len(tagArr) == 0 {
		return
	}

	name = strings.TrimSpace(tagArr[0])
	if len(tagArr) > 1 {
		for _, v := range strings.Split(tagArr[1], " ") {
			key := strings.TrimSpace(strings.Split(v, "=")[0])
			if strings.EqualFold(key, "auto") {
				isAuto = true
			}

			if strings.EqualFold(key, "key") {
				isKey = true
			}
		}
	}

	return
}

func insertFields(v any) ([]fieldEntry, error) {
	switch r := v.(type) {
	case *Record:
		return r.insertFields()
	case Record:
		return r.insertFields()
	}

	dataVal := reflect.ValueOf(v)
	if dataVal.Kind() == reflect.Ptr {
		dataVal = dataVal.Elem()
	}

	if dataVal.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotMapped, v)
	}

	fields, err := structFields(dataVal)
	if err != nil {
		return nil, err
	}

	def, err := TableDefOf(v)
	if err != nil {
		return nil, err
	}

	if len(def.Columns) == 0 {
		return fields, nil
	}

	// the declared column list is authoritative for membership and order
	byCol := make(map[string]any, len(fields))
	for _, f := range fields {
		byCol[f.column] = f.value
	}

	var entries []fieldEntry
	for _, col := range def.Columns {
		if val, ok := byCol[col]; ok {
			entries = append(entries, fieldEntry{column: col, value: val})
		}
	}

	return entries, nil
}

func structFields(dataVal reflect.Value) ([]fieldEntry, error) {
	valType := dataVal.Type()

	var entries []fieldEntry
	for i := 0; i < valType.NumField(); i++ {
		field := valType.Field(i)
		if !field.IsExported() {
			continue
		}

		tagValue, ok := field.Tag.Lookup("db")
		if !ok {
			continue
		}

		col, isAuto, _ := ParseDBTag(tagValue)
		if col == "" || col == "-" || isAuto {
			continue
		}

		fv := dataVal.Field(i)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}

		val, set, err := resolveValue(fv.Interface())
		if err != nil {
			return nil, fmt.Errorf("resolve value for column %s: %w", col, err)
		}

		if !set {
			continue
		}

		entries = append(entries, fieldEntry{column: col, value: val})
	}

	return entries, nil
}

// resolveValue unwraps driver.Valuer fields. A Valuer yielding nil counts as
// unset and drops out of both keys and values.
func resolveValue(val any) (any, bool, error) {
	if vr, ok := val.(driver.Valuer); ok {
		buffVal, err := vr.Value()
		if err != nil {
			return nil, false, err
		}

		if buffVal == nil {
			return nil, false, nil
		}

		return buffVal, true, nil
	}

	return val, true, nil
}
