package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// CheckinStatus represents the boarding state of a booking
type CheckinStatus string

const (
	CheckinNone      CheckinStatus = "NONE"
	CheckinCheckedIn CheckinStatus = "CHECKED_IN"
	CheckinNoShow    CheckinStatus = "NO_SHOW"
)

// Booking represents a tour reservation occupying one boat for one departure window
type Booking struct {
	ID              string // UUID
	PublicReference string // short reference shown to the visitor

	Date      time.Time // UTC-normalized day (00:00:00Z)
	StartTime time.Time // departure instant within the floating UTC day window
	EndTime   time.Time // StartTime + tour duration

	BoatID   int64
	Language string

	Adults         int
	Children       int
	Babies         int
	NumberOfPeople int

	TotalPrice float64
	Status     BookingStatus
	Checkin    CheckinStatus
	IsPaid     bool

	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Message   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward boat capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsUnpaidHold returns true if the booking is an unpaid hold awaiting payment
func (b *Booking) IsUnpaidHold() bool {
	return b.Status == StatusPending && !b.IsPaid
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	From             *time.Time     // Начало периода (по start_time)
	To               *time.Time     // Конец периода (по start_time)
	BoatID           *int64         // Фильтр по лодке (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
