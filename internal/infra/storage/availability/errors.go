package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда у ресторана нет записи доступности
	ErrAvailabilityNotFound = errors.New("availability.repository: availability record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации расписания в JSON
	ErrMarshal = errors.New("availability.repository: failed to marshal schedule")

	// ErrUnmarshal возвращается при ошибке десериализации расписания из JSON
	ErrUnmarshal = errors.New("availability.repository: failed to unmarshal schedule")
)
