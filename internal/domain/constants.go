package domain

// Default schedule configuration
const (
	DefaultCycleMinutes        = 30 // repeating departure cycle
	DefaultTourDurationMinutes = 25
	DefaultBufferMinutes       = 5 // turnaround between two tours on one boat

	// MinBookingDelayMinutes минимальное время до отправления при бронировании
	// на сегодня (считается по местному времени бизнеса)
	MinBookingDelayMinutes = 30
)

// Operating windows (minutes from midnight, departure start times)
const (
	DefaultOpenMinutes  = 600  // 10:00
	DefaultCloseMinutes = 1095 // 18:15, конец последнего тура с буфером

	MorningStartMinutes   = 600  // 10:00
	MorningEndMinutes     = 705  // 11:45
	AfternoonStartMinutes = 810  // 13:30
	AfternoonEndMinutes   = 1065 // 17:45
)

// DefaultOffsets позиции лодок внутри цикла (минуты, по возрастанию).
// i-я активная лодка (в стабильном порядке по id) получает i-й offset.
var DefaultOffsets = []int{0, 5, 10, 25}

// Fleet limits
const (
	MaxDailyBoats = 4 // верхняя граница квоты на день
)

// Ticket prices, EUR
const (
	PriceAdult = 9.0
	PriceChild = 4.0
	PriceBaby  = 0.0
)

// Hold / cache lifetimes
const (
	DefaultHoldTTLMinutes             = 30 // неоплаченный PENDING живет столько минут
	DefaultAvailabilityCacheTTLSecond = 90
	DefaultBoatsCacheTTLSeconds       = 300
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DefaultTimezone местная временная зона бизнеса, используется для
	// проверки минимального времени до отправления "сегодня"
	DefaultTimezone = "Europe/Paris"
)

// Validation limits
const (
	MaxPartySize  = 48 // четыре полные лодки
	MaxNoteLength = 500
)

// SupportedLanguages языки экскурсий, один тур проводится на одном языке
var SupportedLanguages = []string{"fr", "en", "de", "es", "it", "nl"}

// IsSupportedLanguage проверяет, что код языка известен
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
