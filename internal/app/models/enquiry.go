package models

// EnquiryStatus tracks how far an enquiry has been handled.
type EnquiryStatus string

const (
	EnquiryPending    EnquiryStatus = "PENDING"
	EnquiryInProgress EnquiryStatus = "IN_PROGRESS"
	EnquiryResolved   EnquiryStatus = "RESOLVED"
)

// EnquiryStatuses lists the statuses in workflow order.
var EnquiryStatuses = []EnquiryStatus{EnquiryPending, EnquiryInProgress, EnquiryResolved}

// Valid reports whether s is a known status.
func (s EnquiryStatus) Valid() bool {
	for _, known := range EnquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Enquiry is a contact request submitted on the public site.
type Enquiry struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Message   string        `json:"message"`
	Status    EnquiryStatus `json:"status"`
	CreatedAt Timestamp     `json:"createdAt"`
}

func (e Enquiry) Key() int64 { return e.ID }
