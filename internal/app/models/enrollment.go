package models

// PaymentStatus of an enrollment
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// Valid reports whether s is a known status.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// PaymentMode chosen at enrollment time
type PaymentMode string

const (
	PayNow   PaymentMode = "PAY_NOW"
	PayLater PaymentMode = "PAY_LATER"
	// PayOnline is set when an admin marks the enrollment as paid.
	PayOnline PaymentMode = "ONLINE"
)

// Enrollment is a student's registration for a course.
type Enrollment struct {
	ID                       int64         `json:"id"`
	FullName                 string        `json:"fullName"`
	Email                    string        `json:"email"`
	Phone                    string        `json:"phone,omitempty"`
	Gender                   string        `json:"gender,omitempty"`
	Country                  string        `json:"country,omitempty"`
	CourseID                 int64         `json:"courseId"`
	CourseTitle              string        `json:"courseTitle,omitempty"`
	Duration                 string        `json:"duration,omitempty"`
	AccommodationID          *int64        `json:"accommodationId"`
	AccommodationType        string        `json:"accommodationType,omitempty"`
	AccommodationPricePerDay *float64      `json:"accommodationPricePerDay,omitempty"`
	PaymentMode              PaymentMode   `json:"paymentMode"`
	PaymentStatus            PaymentStatus `json:"paymentStatus"`
	TotalPrice               float64       `json:"totalPrice"`
	CreatedAt                Timestamp     `json:"createdAt"`
}

func (e Enrollment) Key() int64 { return e.ID }

// IsPaid reports whether the enrollment has been paid.
func (e Enrollment) IsPaid() bool {
	return e.PaymentStatus == PaymentPaid
}
