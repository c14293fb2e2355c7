package models

// Accommodation is a lodging option priced per day.
type Accommodation struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

func (a Accommodation) Key() int64 { return a.ID }
