package domain

import "github.com/shopspring/decimal"

// PaymentType distinguishes what a patient paid for.
type PaymentType string

const (
	PaymentConsultation PaymentType = "CONSULTATION"
	PaymentMedicine     PaymentType = "MEDICINE"
)

// PaymentStatus is the provider-side state of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Payment is owned by the payment orchestrator; the ledger only reads it once
// it reaches SUCCESS.
type Payment struct {
	PaymentID       string          `json:"paymentID"`
	PatientID       string          `json:"patientID"`
	PaymentType     PaymentType     `json:"paymentType"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	DoctorID        string          `json:"doctorID"`        // CONSULTATION only
	MedicineOrderID string          `json:"medicineOrderID"` // MEDICINE only
}
