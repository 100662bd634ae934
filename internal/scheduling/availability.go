package scheduling

import (
	"sort"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	"github.com/m04kA/FIX-BookingService/pkg/types"
)

// OccupiedSlots раскладывает занятые окна в дискретные слоты фиксированного
// шага (domain.SlotStepMinutes) для отображения в слот-пикере.
//
// Каждое окно порождает ceil(duration/step) слотов начиная с начала окна,
// но не меньше одного - частично занятый слот считается занятым целиком,
// чтобы клиенту не предлагалось время, которое заведомо приведет к конфликту.
// Результат дедуплицирован и отсортирован по времени.
//
// Пример: окно 09:00 длительностью 45 минут → слоты {09:00, 09:30}
func OccupiedSlots(existing []Window) []types.TimeString {
	step := domain.SlotStepMinutes
	seen := make(map[int]struct{})

	for _, w := range existing {
		steps := (w.Duration() + step - 1) / step
		if steps < 1 {
			// Окно нулевой ширины все равно блокирует свой слот в выдаче
			steps = 1
		}
		for i := 0; i < steps; i++ {
			seen[w.Start+i*step] = struct{}{}
		}
	}

	starts := make([]int, 0, len(seen))
	for m := range seen {
		starts = append(starts, m)
	}
	sort.Ints(starts)

	slots := make([]types.TimeString, len(starts))
	for i, m := range starts {
		slots[i] = minutesToTimeString(m)
	}
	return slots
}
