package block

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("block.repository: blocked interval not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("block.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("block.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("block.repository: failed to scan row")
)
