package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString represents a time of day in "HH:MM" format (minute granularity).
// Используется для времени начала слотов и бронирований.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что значение соответствует формату HH:MM
// (час 0-23, минута 0-59)
func (t TimeString) Validate() error {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток.
// Для невалидного значения возвращает ошибку.
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}

	parts := strings.Split(string(t), ":")
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])

	return hours*60 + minutes, nil
}

// AddMinutes возвращает новое время, сдвинутое на delta минут вперед
// Переход через полночь обрезается до 23:59 (слоты не пересекают сутки)
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += delta
	if total > 23*60+59 {
		total = 23*60 + 59
	}
	if total < 0 {
		total = 0
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает TIME колонки ("HH:MM:SS") и текстовые ("HH:MM")
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = truncateToMinutes(v)
	case []byte:
		*t = truncateToMinutes(string(v))
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	return nil
}

// truncateToMinutes обрезает "HH:MM:SS" до "HH:MM"
func truncateToMinutes(s string) TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return TimeString(s)
}
