package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/FIX-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Валидация выполняется ДО какой-либо работы планировщика: запрос с пустой
// корзиной или неизвестной услугой отклоняется, даже если его время ни с чем
// не конфликтует
func validateRequest(req *Request) error {
	if len(req.Items) == 0 {
		return ErrEmptyCart
	}

	for _, item := range req.Items {
		if item.ServiceID == "" {
			return fmt.Errorf("%w: empty serviceId", ErrUnknownService)
		}
		if item.Quantity < domain.MinItemQuantity || item.Quantity > domain.MaxItemQuantity {
			return fmt.Errorf("%w: quantity must be in [%d, %d]",
				ErrInvalidQuantity, domain.MinItemQuantity, domain.MaxItemQuantity)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidTime)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: max %d characters", ErrNotesTooLong, domain.MaxNotesLength)
	}

	return nil
}

// validateItemsAgainstCatalog проверяет, что каждая позиция ссылается на
// существующую услугу каталога
func validateItemsAgainstCatalog(items []Item, durations map[string]int) error {
	for _, item := range items {
		if _, ok := durations[item.ServiceID]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownService, item.ServiceID)
		}
	}
	return nil
}

// normalizeNotes обрезает пробелы; пустые заметки становятся отсутствующими
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
