package domain

type PaymentType string

const (
	PaymentCard PaymentType = "CARD"
	PaymentUPI  PaymentType = "UPI"
)

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentCard, PaymentUPI:
		return true
	}
	return false
}
