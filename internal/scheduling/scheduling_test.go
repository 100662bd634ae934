package scheduling

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	"github.com/m04kA/FIX-BookingService/pkg/types"
)

func TestResolveDuration(t *testing.T) {
	durations := map[string]int{
		"haircut-classic": 30,
		"beard-trim":      45,
	}

	tests := []struct {
		name  string
		items []domain.LineItem
		want  int
	}{
		{
			name:  "empty cart",
			items: nil,
			want:  0,
		},
		{
			name: "single item",
			items: []domain.LineItem{
				{ServiceID: "haircut-classic", Quantity: 1},
			},
			want: 30,
		},
		{
			name: "quantities multiply durations",
			items: []domain.LineItem{
				{ServiceID: "haircut-classic", Quantity: 2},
				{ServiceID: "beard-trim", Quantity: 1},
			},
			want: 105,
		},
		{
			name: "unknown service counts as zero",
			items: []domain.LineItem{
				{ServiceID: "haircut-classic", Quantity: 1},
				{ServiceID: "unknown", Quantity: 5},
			},
			want: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDuration(tt.items, durations))
		})
	}
}

func TestComputeWindow(t *testing.T) {
	w, err := ComputeWindow("09:30", 45)
	require.NoError(t, err)
	assert.Equal(t, Window{Start: 570, End: 615}, w)
	assert.Equal(t, 45, w.Duration())
	assert.Equal(t, types.TimeString("09:30"), w.StartTime())
}

func TestComputeWindow_InvalidTime(t *testing.T) {
	for _, bad := range []string{"", "9h30", "24:00", "10:60", "10:00:00", "ab:cd"} {
		t.Run(bad, func(t *testing.T) {
			_, err := ComputeWindow(types.TimeString(bad), 30)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidTimeString))
		})
	}
}

func TestWindowOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Window
		want bool
	}{
		{"identical windows", Window{0, 30}, Window{0, 30}, true},
		{"contained window", Window{540, 600}, Window{550, 560}, true},
		{"partial overlap", Window{0, 31}, Window{30, 60}, true},
		{"back-to-back windows do not overlap", Window{0, 30}, Window{30, 60}, false},
		{"disjoint windows", Window{0, 30}, Window{60, 90}, false},
		{"zero-width window never overlaps", Window{540, 540}, Window{530, 600}, false},
		{"zero-width against identical start", Window{540, 540}, Window{540, 540}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestHasConflict(t *testing.T) {
	existing := []Window{
		{Start: 540, End: 600}, // 09:00-10:00
	}

	// Запрос внутри занятого окна отклоняется при любой длительности > 0
	for _, d := range []int{1, 15, 30, 120} {
		requested := Window{Start: 570, End: 570 + d}
		assert.True(t, HasConflict(requested, existing), "duration %d", d)
	}

	// Бронирование впритык к существующему легально
	assert.False(t, HasConflict(Window{Start: 600, End: 630}, existing))
	assert.False(t, HasConflict(Window{Start: 510, End: 540}, existing))

	// Пустой список окон никогда не конфликтует
	assert.False(t, HasConflict(Window{Start: 540, End: 600}, nil))
}

// Сценарий из корзины: haircut (30 мин) + beard (25 мин) на 09:00 занимает
// [540, 595); второй запрос на 09:40 того же дня пересекается и отклоняется.
func TestHasConflict_CartScenario(t *testing.T) {
	durations := map[string]int{"haircut": 30, "beard": 25}
	items := []domain.LineItem{
		{ServiceID: "haircut", Quantity: 1},
		{ServiceID: "beard", Quantity: 1},
	}

	total := ResolveDuration(items, durations)
	require.Equal(t, 55, total)

	first, err := ComputeWindow("09:00", total)
	require.NoError(t, err)
	assert.Equal(t, Window{Start: 540, End: 595}, first)

	second, err := ComputeWindow("09:40", 30)
	require.NoError(t, err)
	assert.True(t, HasConflict(second, []Window{first}))
}

func TestOccupiedSlots(t *testing.T) {
	tests := []struct {
		name    string
		windows []Window
		want    []types.TimeString
	}{
		{
			name:    "no appointments",
			windows: nil,
			want:    []types.TimeString{},
		},
		{
			name:    "45 minutes rounds up to two slots",
			windows: []Window{{Start: 540, End: 585}}, // 09:00 + 45m
			want:    []types.TimeString{"09:00", "09:30"},
		},
		{
			name:    "exact slot multiple",
			windows: []Window{{Start: 600, End: 660}}, // 10:00 + 60m
			want:    []types.TimeString{"10:00", "10:30"},
		},
		{
			name:    "short window still blocks one slot",
			windows: []Window{{Start: 540, End: 550}},
			want:    []types.TimeString{"09:00"},
		},
		{
			name:    "zero-width window blocks its slot in the view",
			windows: []Window{{Start: 540, End: 540}},
			want:    []types.TimeString{"09:00"},
		},
		{
			name: "overlapping windows deduplicate and sort",
			windows: []Window{
				{Start: 600, End: 660},
				{Start: 540, End: 585},
				{Start: 570, End: 600},
			},
			want: []types.TimeString{"09:00", "09:30", "10:00", "10:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OccupiedSlots(tt.windows))
		})
	}
}
