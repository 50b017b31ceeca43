package get_planning

import "github.com/kalicatt/boat-booking-saas-sub003/internal/domain"

// PlanningEntry строка планинга для операторов, с контактными данными
type PlanningEntry struct {
	ID              string  `json:"id"`
	PublicReference string  `json:"publicReference"`
	Time            string  `json:"time"`
	BoatID          int64   `json:"boatId"`
	Language        string  `json:"language"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	Babies          int     `json:"babies"`
	NumberOfPeople  int     `json:"numberOfPeople"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	Checkin         string  `json:"checkin"`
	IsPaid          bool    `json:"isPaid"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Message         *string `json:"message,omitempty"`
}

// PlanningResponse планинг дня
type PlanningResponse struct {
	Date     string          `json:"date"`
	Bookings []PlanningEntry `json:"bookings"`
}

func FromDomainList(date string, list []*domain.Booking) *PlanningResponse {
	entries := make([]PlanningEntry, 0, len(list))
	for _, b := range list {
		entries = append(entries, PlanningEntry{
			ID:              b.ID,
			PublicReference: b.PublicReference,
			Time:            b.StartTime.UTC().Format(domain.TimeFormat),
			BoatID:          b.BoatID,
			Language:        b.Language,
			Adults:          b.Adults,
			Children:        b.Children,
			Babies:          b.Babies,
			NumberOfPeople:  b.NumberOfPeople,
			TotalPrice:      b.TotalPrice,
			Status:          string(b.Status),
			Checkin:         string(b.Checkin),
			IsPaid:          b.IsPaid,
			FirstName:       b.FirstName,
			LastName:        b.LastName,
			Email:           b.Email,
			Phone:           b.Phone,
			Message:         b.Message,
		})
	}
	return &PlanningResponse{Date: date, Bookings: entries}
}
