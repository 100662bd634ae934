package create_appointment

import "errors"

var (
	// ErrEmptyCart возвращается, когда корзина запроса пуста
	ErrEmptyCart = errors.New("create_appointment: cart is empty")

	// ErrUnknownService возвращается, когда позиция ссылается на неизвестную услугу
	ErrUnknownService = errors.New("create_appointment: unknown service in cart")

	// ErrInvalidQuantity возвращается при количестве вне диапазона [1, 10]
	ErrInvalidQuantity = errors.New("create_appointment: invalid item quantity")

	// ErrInvalidPaymentMethod возвращается при неизвестном методе оплаты
	ErrInvalidPaymentMethod = errors.New("create_appointment: invalid payment method")

	// ErrNotesTooLong возвращается, когда заметки длиннее 500 символов
	ErrNotesTooLong = errors.New("create_appointment: notes too long")

	// ErrInvalidDate возвращается при отсутствующей дате или дате в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidTime возвращается при отсутствующем или некорректном времени начала
	ErrInvalidTime = errors.New("create_appointment: invalid start time")

	// ErrTimeSlotTaken возвращается, когда запрошенное окно пересекается с
	// существующим бронированием (pre-check) или вставка отклонена уникальным
	// ограничением БД (backstop) - для вызывающего исходы неразличимы
	ErrTimeSlotTaken = errors.New("create_appointment: time slot already taken")

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
