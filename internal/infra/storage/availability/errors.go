package availability

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно доступности не найдено
	ErrWindowNotFound = errors.New("availability.repository: availability window not found")

	// ErrDuplicateWindow возвращается при попытке создать второе окно с тем же ключом (барбер, даты)
	ErrDuplicateWindow = errors.New("availability.repository: duplicate window for barber and date range")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
