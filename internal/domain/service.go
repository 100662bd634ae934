package domain

// ServiceCategory represents the catalog category of a service
type ServiceCategory string

const (
	CategoryHaircut ServiceCategory = "haircut"
	CategoryBeard   ServiceCategory = "beard"
	CategoryShaving ServiceCategory = "shaving"
	CategoryCombo   ServiceCategory = "combo"
)

// IsValid returns true for a known category value
func (c ServiceCategory) IsValid() bool {
	switch c {
	case CategoryHaircut, CategoryBeard, CategoryShaving, CategoryCombo:
		return true
	}
	return false
}

// Service represents an immutable catalog entry
// Каталог заполняется миграциями и read-only для сервиса
type Service struct {
	ID              string
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Image           string
	Category        ServiceCategory
}

// DurationIndex строит отображение id услуги -> длительность в минутах
// Используется резолвером длительности при расчете занимаемого окна
func DurationIndex(services []*Service) map[string]int {
	index := make(map[string]int, len(services))
	for _, s := range services {
		index[s.ID] = s.DurationMinutes
	}
	return index
}
