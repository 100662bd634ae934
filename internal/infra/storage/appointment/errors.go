package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrTimeSlotTaken возвращается, когда вставка отклонена уникальным
	// ограничением (appointment_date, start_time) - страховка от гонки
	// между проверкой пересечений и записью
	ErrTimeSlotTaken = errors.New("appointment.repository: time slot already taken")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("appointment.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
