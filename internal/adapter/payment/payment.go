// Package payment holds the payment gateway implementations behind the
// selector the booking flow uses. Each gateway is a stand-in for a real
// processor integration.
package payment

import (
	"context"
	"fmt"
	"log"

	"github.com/showseat/show_booking/internal/core/domain"
	"github.com/showseat/show_booking/internal/core/ports"
)

type CardGateway struct{}

func (CardGateway) Pay(ctx context.Context, booking *domain.Booking) error {
	log.Printf("charging %.2f to card for booking %s", booking.Amount, booking.ID)
	return nil
}

type UPIGateway struct{}

func (UPIGateway) Pay(ctx context.Context, booking *domain.Booking) error {
	log.Printf("collecting %.2f over UPI for booking %s", booking.Amount, booking.ID)
	return nil
}

// Selector maps each payment type to its gateway. Built once at startup and
// injected wherever a payment capability is needed.
type Selector struct {
	gateways map[domain.PaymentType]ports.PaymentGateway
}

func NewSelector() *Selector {
	return &Selector{
		gateways: map[domain.PaymentType]ports.PaymentGateway{
			domain.PaymentCard: CardGateway{},
			domain.PaymentUPI:  UPIGateway{},
		},
	}
}

func (s *Selector) Select(paymentType domain.PaymentType) (ports.PaymentGateway, error) {
	g, ok := s.gateways[paymentType]
	if !ok {
		return nil, fmt.Errorf("unsupported payment type %q", paymentType)
	}
	return g, nil
}
