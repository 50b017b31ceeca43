package get_availability

import "github.com/kalicatt/boat-booking-saas-sub003/internal/domain"

// Request параметры запроса доступности
type Request struct {
	Date     string // YYYY-MM-DD
	Language string // код языка экскурсии
	Adults   int
	Children int
	Babies   int
}

// PartySize полный размер группы, каждый занимает место на лодке
func (r *Request) PartySize() int {
	return r.Adults + r.Children + r.Babies
}

// Response ответ с доступными слотами на день
type Response = domain.AvailabilityResult
