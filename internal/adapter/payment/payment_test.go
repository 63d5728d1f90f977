package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showseat/show_booking/internal/adapter/payment"
	"github.com/showseat/show_booking/internal/core/domain"
)

func TestSelector(t *testing.T) {
	selector := payment.NewSelector()

	for _, pt := range []domain.PaymentType{domain.PaymentCard, domain.PaymentUPI} {
		g, err := selector.Select(pt)
		require.NoError(t, err)
		assert.NoError(t, g.Pay(context.Background(), &domain.Booking{Amount: 300}))
	}

	_, err := selector.Select(domain.PaymentType("CASH"))
	assert.Error(t, err)
}
