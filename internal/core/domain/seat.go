package domain

type SeatType string

const (
	SeatRegular  SeatType = "REGULAR"
	SeatRecliner SeatType = "RECLINER"
)

func (t SeatType) IsValid() bool {
	switch t {
	case SeatRegular, SeatRecliner:
		return true
	}
	return false
}

// Seat carries no availability flag on purpose: whether a seat can be
// booked is decided entirely by the lock store at booking time.
type Seat struct {
	ID    string
	Type  SeatType
	Price float64
}
