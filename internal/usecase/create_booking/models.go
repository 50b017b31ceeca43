package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

// Request параметры создания бронирования
type Request struct {
	Date     string `json:"date"`     // YYYY-MM-DD
	Time     string `json:"time"`     // HH:MM, старт отправления
	Language string `json:"language"` // язык экскурсии

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Babies   int `json:"babies"`

	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Message   *string `json:"message,omitempty"`

	// BoatID необязательная явная лодка (админские брони).
	// Без него лодка выводится из смещения слота.
	BoatID *int64 `json:"boatId,omitempty"`

	// IsPrivate приватизация: группа расширяется до полной вместимости
	// лодки, чтобы никто не мог присоединиться к отправлению.
	IsPrivate bool `json:"isPrivate"`

	// Paid помечает бронь оплаченной при создании (касса на месте).
	// Неоплаченные брони живут как холды и снимаются по TTL.
	Paid bool `json:"paid"`
}

// PartySize полный размер группы
func (r *Request) PartySize() int {
	return r.Adults + r.Children + r.Babies
}

// Response созданное бронирование
type Response struct {
	ID              string  `json:"id"`
	PublicReference string  `json:"publicReference"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	BoatID          int64   `json:"boatId"`
	Language        string  `json:"language"`
	NumberOfPeople  int     `json:"numberOfPeople"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
}

// calculatePrice считает стоимость группы по тарифам
func calculatePrice(adults, children, babies int) float64 {
	return float64(adults)*domain.PriceAdult +
		float64(children)*domain.PriceChild +
		float64(babies)*domain.PriceBaby
}

// newPublicReference строит короткую ссылку для посетителя: BT<год>-<8 символов>
func newPublicReference(id uuid.UUID, day time.Time) string {
	compact := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return fmt.Sprintf("BT%d-%s", day.Year(), compact[:8])
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		PublicReference: b.PublicReference,
		Date:            b.Date.Format(domain.DateFormat),
		Time:            b.StartTime.UTC().Format(domain.TimeFormat),
		BoatID:          b.BoatID,
		Language:        b.Language,
		NumberOfPeople:  b.NumberOfPeople,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
	}
}
