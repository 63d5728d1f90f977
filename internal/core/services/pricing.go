package services

import (
	"github.com/showseat/show_booking/internal/core/domain"
)

// ResolveAmount sums the price of every requested seat against the show's
// seat catalog. Requested ids are matched by membership; ordering and
// duplicates carry no meaning. A requested id missing from the catalog fails
// the whole resolution rather than silently pricing at zero.
func ResolveAmount(seats []domain.Seat, seatIDs []string) (float64, error) {
	priceByID := make(map[string]float64, len(seats))
	for _, seat := range seats {
		priceByID[seat.ID] = seat.Price
	}

	var total float64
	for _, id := range seatIDs {
		price, ok := priceByID[id]
		if !ok {
			return 0, &domain.UnknownSeatError{SeatID: id}
		}
		total += price
	}
	return total, nil
}
