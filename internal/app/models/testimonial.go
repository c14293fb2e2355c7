package models

// Testimonial is a student quote shown on the public site.
type Testimonial struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

func (t Testimonial) Key() int64 { return t.ID }
