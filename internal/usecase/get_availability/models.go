package get_availability

import (
	"time"

	"github.com/m04kA/FIX-BookingService/pkg/types"
)

// Request модель запроса доступности на дату
type Request struct {
	Date time.Time // Дата, для которой запрашивается занятость (без времени)
}

// Response модель ответа с занятостью на дату
// Каждое существующее бронирование даты представлено ровно одним блоком
type Response struct {
	Date          time.Time          // Запрошенная дата
	Blocks        []Block            // Занятые блоки (по одному на бронирование)
	OccupiedSlots []types.TimeString // Занятые 30-минутные слоты для слот-пикера
}

// Block занятый блок времени: начало + суммарная длительность бронирования
// Форма ответа повторяет контракт клиента: {time, totalMinutes}
type Block struct {
	StartTime    types.TimeString
	TotalMinutes int
}
