package rowsave_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/likearthian/rowsave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"
)

func TestBuildInsert(t *testing.T) {
	u := user{
		Name:     null.StringFrom("bob"),
		Birthday: null.StringFrom("3/5/1997"),
	}

	qry, args, err := rowsave.BuildInsert(u)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (name, birthday) VALUES (?, ?)", qry)
	assert.Equal(t, []any{"bob", "3/5/1997"}, args)
}

func TestBuildInsertRebindsPerDialect(t *testing.T) {
	u := user{
		Name:     null.StringFrom("bob"),
		Birthday: null.StringFrom("3/5/1997"),
	}

	qry, _, err := rowsave.BuildInsert(u)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (name, birthday) VALUES ($1, $2)",
		sqlx.Rebind(sqlx.DOLLAR, qry),
	)
}

func TestBuildInsertEmptyValue(t *testing.T) {
	_, _, err := rowsave.BuildInsert(user{})
	require.ErrorIs(t, err, rowsave.ErrNoColumns)
}

type eventRow struct {
	Name string
}

func (eventRow) GetTableDef() rowsave.TableDef {
	return rowsave.TableDef{Name: "events", Columns: []string{"name", "created_at"}}
}

func (e eventRow) GenerateInsertParts() ([]string, []string, []any) {
	return []string{"name", "created_at"}, []string{"?", "now()"}, []any{e.Name}
}

func TestBuildInsertGenerator(t *testing.T) {
	qry, args, err := rowsave.BuildInsert(eventRow{Name: "deploy"})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO events (name, created_at) VALUES (?, now())", qry)
	assert.Equal(t, []any{"deploy"}, args)
}

func TestBuildInsertUsesSchema(t *testing.T) {
	rec := rowsave.NewRecord(rowsave.TableDef{
		Schema:  "app",
		Name:    "users",
		Columns: []string{"name"},
	})
	rec.Set("name", "bob")

	qry, _, err := rowsave.BuildInsert(rec)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO app.users (name) VALUES (?)", qry)
}
