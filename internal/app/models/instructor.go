package models

// Instructor teaches courses.
type Instructor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func (i Instructor) Key() int64 { return i.ID }
