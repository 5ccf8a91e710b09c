package models

// Accepted payment methods.
const (
	MethodCheck      = "Check"
	MethodCash       = "Cash"
	MethodCreditCard = "Credit Card"
	MethodZelle      = "Zelle"
	MethodVenmo      = "Venmo"
	MethodPayPal     = "PayPal"
)

var PaymentMethods = []string{
	MethodCheck,
	MethodCash,
	MethodCreditCard,
	MethodZelle,
	MethodVenmo,
	MethodPayPal,
}

// Payment is one row of the Payments sheet.
type Payment struct {
	ID        ID      `json:"id"`
	ProjectID ID      `json:"projectId"`
	Date      string  `json:"date"`
	Amount    Numeric `json:"amount"`
	Method    string  `json:"method"`
	Note      string  `json:"note"`
}
