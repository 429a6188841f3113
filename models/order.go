package models

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentCOD     PaymentMethod = "cod"
	PaymentPaytm   PaymentMethod = "paytm"
	PaymentPhonePe PaymentMethod = "phonepe"
	PaymentGPay    PaymentMethod = "gpay"
	PaymentCard    PaymentMethod = "card"
)

// MapPaymentMethod maps a request string to a PaymentMethod.
func MapPaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(s) {
	case string(PaymentCOD):
		return PaymentCOD, nil
	case string(PaymentPaytm):
		return PaymentPaytm, nil
	case string(PaymentPhonePe):
		return PaymentPhonePe, nil
	case string(PaymentGPay):
		return PaymentGPay, nil
	case string(PaymentCard):
		return PaymentCard, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// Label returns the display name for a payment method.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCOD:
		return "Cash on Delivery"
	case PaymentPaytm:
		return "Paytm"
	case PaymentPhonePe:
		return "PhonePe"
	case PaymentGPay:
		return "Google Pay"
	case PaymentCard:
		return "Credit/Debit Card"
	}
	return string(m)
}

// Order is an immutable snapshot taken at placement time and prepended to the
// user's recent orders. Amounts are in rupees.
type Order struct {
	OrderID       string        `json:"orderId"`
	Items         []CartItem    `json:"items"`
	Subtotal      int           `json:"subtotal"`
	DeliveryFee   int           `json:"deliveryFee"`
	BoxFees       int           `json:"boxFees"`
	Total         int           `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Address       Address       `json:"address"`
	OrderDate     time.Time     `json:"orderDate"`
}

// NewOrderID derives the time-based order token, e.g. ORD58231476 from the
// last eight digits of the millisecond clock.
func NewOrderID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "ORD" + ms
}
