package domain

// Business validation constants
const (
	MinItemQuantity = 1
	MaxItemQuantity = 10
	MaxNotesLength  = 500
)

// Availability presentation constants
const (
	// SlotStepMinutes шаг дискретизации занятых слотов для слот-пикера
	// Используется только для отображения, не для проверки пересечений
	SlotStepMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
