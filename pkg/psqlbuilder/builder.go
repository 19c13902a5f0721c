// Package psqlbuilder настраивает squirrel под используемый драйвер БД.
// Postgres использует плейсхолдеры $1, SQLite использует ?.
package psqlbuilder

import (
	"github.com/Masterminds/squirrel"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Builder построитель запросов для конкретного драйвера.
// Select, Insert, Update и Delete берутся из squirrel.StatementBuilderType.
type Builder struct {
	squirrel.StatementBuilderType
	rowLocks bool
}

// New возвращает построитель для драйвера; неизвестный драйвер считается Postgres
func New(driver string) Builder {
	if driver == DriverSQLite {
		return Builder{
			StatementBuilderType: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		}
	}
	return Builder{
		StatementBuilderType: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		rowLocks:             true,
	}
}

// ForUpdate добавляет FOR UPDATE, если драйвер поддерживает блокировку строк
func (b Builder) ForUpdate(sb squirrel.SelectBuilder) squirrel.SelectBuilder {
	if !b.rowLocks {
		return sb
	}
	return sb.Suffix("FOR UPDATE")
}
