package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	query, args, err := New(DriverPostgres).Select("id").From("appointments").Where(squirrel.Eq{"barber_id": "b1"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM appointments WHERE barber_id = $1", query)
	assert.Equal(t, []interface{}{"b1"}, args)

	query, _, err = New(DriverSQLite).Delete("availability").Where(squirrel.Eq{"id": "a1"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM availability WHERE id = ?", query)

	query, _, err = New("mysql").Update("barbers").Set("name", "Ali").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE barbers SET name = $1", query)
}

func TestBuildersAreIndependent(t *testing.T) {
	pg := New(DriverPostgres)
	lite := New(DriverSQLite)

	pgQuery, _, err := pg.Insert("barbers").Columns("id").Values("b1").ToSql()
	require.NoError(t, err)
	liteQuery, _, err := lite.Insert("barbers").Columns("id").Values("b1").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO barbers (id) VALUES ($1)", pgQuery)
	assert.Equal(t, "INSERT INTO barbers (id) VALUES (?)", liteQuery)
}

func TestForUpdate(t *testing.T) {
	pg := New(DriverPostgres)
	query, _, err := pg.ForUpdate(pg.Select("id").From("appointments")).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM appointments FOR UPDATE", query)

	lite := New(DriverSQLite)
	query, _, err = lite.ForUpdate(lite.Select("id").From("appointments")).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM appointments", query)
}
