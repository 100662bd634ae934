package create_appointment

import (
	"time"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	"github.com/m04kA/FIX-BookingService/pkg/types"
)

// Item позиция корзины в запросе
type Item struct {
	ServiceID string // Строковый ключ услуги каталога
	Quantity  int    // Количество, [1, 10]
}

// Request модель запроса на создание бронирования
// PaymentMethod уже нормализован на границе HTTP (алиас "cash" -> "presencial")
type Request struct {
	Date          time.Time            // Дата бронирования (без времени)
	StartTime     types.TimeString     // Время начала (например, "09:30")
	Items         []Item               // Непустая корзина услуг
	PaymentMethod domain.PaymentMethod // Канонический метод оплаты
	Notes         *string              // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Суммарная длительность корзины
	PaymentMethod   string           // Метод оплаты
	Notes           *string          // Заметки
	Items           []Item           // Позиции корзины (в порядке запроса)
	CreatedAt       time.Time        // Время создания
}
