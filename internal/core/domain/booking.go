package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingCreated   BookingStatus = "CREATED"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingExpired   BookingStatus = "EXPIRED"
)

type Booking struct {
	ID          uuid.UUID
	UserID      string
	ShowID      string
	SeatIDs     []string
	Status      BookingStatus
	PaymentType PaymentType
	Amount      float64
	CreatedAt   time.Time
	ConfirmedAt *time.Time
}
