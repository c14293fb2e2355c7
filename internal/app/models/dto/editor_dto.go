package dto

// EditorResponse reports the editor region of a resource page
type EditorResponse struct {
	State    string      `json:"state" example:"edit"`
	RecordID int64       `json:"recordId,omitempty"`
	Step     int         `json:"step,omitempty"`
	Steps    int         `json:"steps,omitempty"`
	Draft    interface{} `json:"draft,omitempty"`
}

// QuoteResponse is an enrollment price breakdown
type QuoteResponse struct {
	DurationDays      int     `json:"durationDays"`
	CoursePrice       float64 `json:"coursePrice"`
	AccommodationCost float64 `json:"accommodationCost"`
	TotalPrice        float64 `json:"totalPrice"`
}
