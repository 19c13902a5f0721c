package admin

import (
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor
