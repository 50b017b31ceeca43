package get_booking

import "github.com/kalicatt/boat-booking-saas-sub003/internal/domain"

// BookingResponse публичное представление бронирования.
// Контактные данные наружу не отдаются.
type BookingResponse struct {
	PublicReference string  `json:"publicReference"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Language        string  `json:"language"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	Babies          int     `json:"babies"`
	NumberOfPeople  int     `json:"numberOfPeople"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	IsPaid          bool    `json:"isPaid"`
}

func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		PublicReference: b.PublicReference,
		Date:            b.Date.Format(domain.DateFormat),
		Time:            b.StartTime.UTC().Format(domain.TimeFormat),
		Language:        b.Language,
		Adults:          b.Adults,
		Children:        b.Children,
		Babies:          b.Babies,
		NumberOfPeople:  b.NumberOfPeople,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		IsPaid:          b.IsPaid,
	}
}
