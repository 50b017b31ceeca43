package get_fleet

import "github.com/kalicatt/boat-booking-saas-sub003/internal/domain"

// BoatResponse представление лодки
type BoatResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// FleetResponse список лодок флота
type FleetResponse struct {
	Boats []BoatResponse `json:"boats"`
}

// UpdateStatusRequest запрос смены статуса лодки
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func FromDomainList(boats []*domain.Boat) *FleetResponse {
	result := make([]BoatResponse, 0, len(boats))
	for _, b := range boats {
		result = append(result, BoatResponse{
			ID:       b.ID,
			Name:     b.Name,
			Capacity: b.Capacity,
			Status:   string(b.Status),
		})
	}
	return &FleetResponse{Boats: result}
}
