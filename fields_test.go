package rowsave_test

import (
	"testing"

	"github.com/likearthian/rowsave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"
)

type user struct {
	ID       int64       `db:"id,auto key"`
	Name     null.String `db:"name"`
	Birthday null.String `db:"birthday"`
}

func (user) GetTableDef() rowsave.TableDef {
	return rowsave.TableDef{
		Name:     "users",
		KeyField: "id",
		Columns:  []string{"id", "name", "birthday"},
	}
}

type auditEntry struct {
	ID     int64   `db:"id,auto key"`
	Actor  string  `db:"actor"`
	Action string  `db:"action"`
	Note   *string `db:"note"`
	Ignore string  `db:"-"`
}

func TestKeysAndValuesStayAligned(t *testing.T) {
	u := user{
		Name:     null.StringFrom("bob"),
		Birthday: null.StringFrom("3/5/1997"),
	}

	keys, err := rowsave.Keys(u)
	require.NoError(t, err)

	values, err := rowsave.Values(u)
	require.NoError(t, err)

	require.Len(t, keys, len(values))
	assert.Equal(t, []string{"name", "birthday"}, keys)
	assert.Equal(t, []any{"bob", "3/5/1997"}, values)

	ks, err := rowsave.KeyString(u)
	require.NoError(t, err)
	assert.Equal(t, "name, birthday", ks)
}

func TestOmittedAttributeDropsExactlyThatColumn(t *testing.T) {
	u := user{Name: null.StringFrom("bob")}

	keys, err := rowsave.Keys(u)
	require.NoError(t, err)

	values, err := rowsave.Values(u)
	require.NoError(t, err)

	assert.Equal(t, []string{"name"}, keys)
	assert.Equal(t, []any{"bob"}, values)
}

func TestNilPointerFieldIsOmitted(t *testing.T) {
	e := auditEntry{Actor: "alice", Action: "login"}

	keys, err := rowsave.Keys(e)
	require.NoError(t, err)
	assert.Equal(t, []string{"actor", "action"}, keys)

	note := "first login"
	e.Note = &note

	keys, err = rowsave.Keys(e)
	require.NoError(t, err)
	assert.Equal(t, []string{"actor", "action", "note"}, keys)

	values, err := rowsave.Values(e)
	require.NoError(t, err)
	assert.Equal(t, []any{"alice", "login", "first login"}, values)
}

func TestTableDefOfDerivesFromTags(t *testing.T) {
	def, err := rowsave.TableDefOf(auditEntry{})
	require.NoError(t, err)

	assert.Equal(t, "audit_entry", def.Name)
	assert.Equal(t, "id", def.KeyField)
	assert.Equal(t, []string{"actor", "action", "note"}, def.Columns)
}

func TestTableDefOfPrefersModel(t *testing.T) {
	def, err := rowsave.TableDefOf(user{})
	require.NoError(t, err)

	assert.Equal(t, "users", def.Name)
	assert.Equal(t, []string{"id", "name", "birthday"}, def.Columns)
}

func TestTableDefOfRejectsNonStruct(t *testing.T) {
	_, err := rowsave.TableDefOf(map[string]any{"name": "bob"})
	require.ErrorIs(t, err, rowsave.ErrNotMapped)
}

func TestParseDBTag(t *testing.T) {
	name, isAuto, isKey := rowsave.ParseDBTag("id,auto key")
	assert.Equal(t, "id", name)
	assert.True(t, isAuto)
	assert.True(t, isKey)

	name, isAuto, isKey = rowsave.ParseDBTag("name")
	assert.Equal(t, "name", name)
	assert.False(t, isAuto)
	assert.False(t, isKey)
}
