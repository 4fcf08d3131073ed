package payment

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Method is the payment instrument chosen by the buyer.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// CreditCard is a card payment through the gateway.
	CreditCard

	// BankTransfer is a manual wire transfer.
	BankTransfer

	// CashOnDelivery collects the money at handover.
	CashOnDelivery

	// DigitalWallet is a wallet payment through the gateway.
	DigitalWallet
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:  "Unknown",
		CreditCard:     "CreditCard",
		BankTransfer:   "BankTransfer",
		CashOnDelivery: "CashOnDelivery",
		DigitalWallet:  "DigitalWallet",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		CreditCard:     "CreditCard",
		BankTransfer:   "BankTransfer",
		CashOnDelivery: "CashOnDelivery",
		DigitalWallet:  "DigitalWallet",
	}
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

// String returns the human-readable name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// MethodFromString parses the wire name of a method, e.g. "CreditCard".
func MethodFromString(s string) (Method, error) {
	for method, name := range getValidMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%q is not a valid method", s))
}
