package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentStatus represents the payment sub-flag of an order.
// It is orthogonal to Status: confirming a payment never changes the order's
// lifecycle state by itself, although downstream logic (such as auto-advancing
// a paid order to Preparing) may depend on it.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid is the initial payment status at checkout.
	PaymentUnpaid

	// PaymentPaid indicates the payment was confirmed.
	// This flag is sticky: once paid, an order never reverts to unpaid.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "Unknown",
		PaymentUnpaid:  "Unpaid",
		PaymentPaid:    "Paid",
	}
}

// Validate checks if the PaymentStatus value is valid.
// Valid values are PaymentUnpaid and PaymentPaid.
func (p PaymentStatus) Validate() error {
	if p != PaymentUnpaid && p != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
