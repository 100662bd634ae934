package get_availability

import (
	"github.com/m04kA/FIX-BookingService/internal/domain"
	getAvailability "github.com/m04kA/FIX-BookingService/internal/usecase/get_availability"
)

// BlockResponse занятый блок в HTTP ответе
type BlockResponse struct {
	StartTime    string `json:"time"`
	TotalMinutes int    `json:"totalMinutes"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date          string          `json:"date"`
	Blocks        []BlockResponse `json:"blocks"`
	OccupiedSlots []string        `json:"occupiedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	blocks := make([]BlockResponse, 0, len(resp.Blocks))
	for _, b := range resp.Blocks {
		blocks = append(blocks, BlockResponse{
			StartTime:    b.StartTime.String(),
			TotalMinutes: b.TotalMinutes,
		})
	}

	slots := make([]string, 0, len(resp.OccupiedSlots))
	for _, s := range resp.OccupiedSlots {
		slots = append(slots, s.String())
	}

	return &AvailabilityResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		Blocks:        blocks,
		OccupiedSlots: slots,
	}
}
