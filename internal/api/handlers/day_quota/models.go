package day_quota

import "github.com/kalicatt/boat-booking-saas-sub003/internal/domain"

// QuotaResponse квота дня
type QuotaResponse struct {
	Day            string  `json:"day"`
	BoatsAvailable int     `json:"boatsAvailable"`
	Note           *string `json:"note,omitempty"`
}

// SetQuotaRequest запрос установки квоты
type SetQuotaRequest struct {
	BoatsAvailable int     `json:"boatsAvailable"`
	Note           *string `json:"note,omitempty"`
}

func FromDomain(q *domain.DailyBoatQuota) *QuotaResponse {
	return &QuotaResponse{
		Day:            q.Day.Format(domain.DateFormat),
		BoatsAvailable: q.BoatsAvailable,
		Note:           q.Note,
	}
}
