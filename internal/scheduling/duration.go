package scheduling

import "github.com/m04kA/FIX-BookingService/internal/domain"

// ResolveDuration вычисляет суммарную занимаемую длительность корзины в минутах:
// сумма duration(serviceId) * quantity по всем позициям.
//
// Неизвестный serviceId считается нулевой длительностью - валидация позиций
// против каталога выполняется выше, до планирования. Функция чистая и
// детерминированная относительно переданного индекса длительностей.
func ResolveDuration(items []domain.LineItem, durations map[string]int) int {
	total := 0
	for _, item := range items {
		total += durations[item.ServiceID] * item.Quantity
	}
	return total
}
