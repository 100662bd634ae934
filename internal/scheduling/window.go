package scheduling

import (
	"fmt"

	"github.com/m04kA/FIX-BookingService/pkg/types"
)

// Window полуоткрытый интервал [Start, End) в минутах с начала суток,
// занимаемый одним бронированием
type Window struct {
	Start int
	End   int
}

// ComputeWindow строит окно бронирования из времени начала "HH:MM"
// и суммарной длительности в минутах
// Для некорректного времени возвращает ошибку types.ErrInvalidTimeString
func ComputeWindow(start types.TimeString, durationMinutes int) (Window, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return Window{}, err
	}

	return Window{
		Start: startMinutes,
		End:   startMinutes + durationMinutes,
	}, nil
}

// Duration возвращает ширину окна в минутах
func (w Window) Duration() int {
	return w.End - w.Start
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение двух полуоткрытых интервалов
// Интервалы пересекаются, только если:
// - начало одного СТРОГО раньше конца другого И
// - начало другого СТРОГО раньше конца первого
//
// Строгие неравенства означают, что граничащие окна НЕ пересекаются:
// бронирование, заканчивающееся ровно в момент начала следующего, легально
// (back-to-back). Окно нулевой ширины [s, s) не пересекается ни с чем.
//
// Примеры:
// - [540, 600) и [570, 630) → ЕСТЬ пересечение (570-600)
// - [540, 600) и [600, 630) → НЕТ пересечения (граничат)
// - [0, 30) и [30, 60)      → НЕТ пересечения (граничат)
func (w Window) Overlaps(other Window) bool {
	return w.Start < other.End && other.Start < w.End
}

// HasConflict проверяет запрошенное окно против всех существующих
// Возвращает true, если найдено хотя бы одно пересечение
func HasConflict(requested Window, existing []Window) bool {
	for _, w := range existing {
		if requested.Overlaps(w) {
			return true
		}
	}
	return false
}

// StartTime возвращает начало окна как "HH:MM"
func (w Window) StartTime() types.TimeString {
	return minutesToTimeString(w.Start)
}

func minutesToTimeString(m int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}
