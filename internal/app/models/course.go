package models

// Course is a bookable course as served by the backend.
type Course struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	ShortDescription string          `json:"shortDescription,omitempty"`
	LongDescription  string          `json:"longDescription,omitempty"`
	Price            *float64        `json:"price"`
	Rating           *float64        `json:"rating"`
	Category         string          `json:"category,omitempty"`
	Schedule         string          `json:"schedule,omitempty"`
	Duration         string          `json:"duration,omitempty"`
	Mode             string          `json:"mode,omitempty"`
	IsVisible        bool            `json:"isVisible"`
	ImageURL         string          `json:"imageUrl,omitempty"`
	OptionImage1     string          `json:"optionImage1,omitempty"`
	OptionImage2     string          `json:"optionImage2,omitempty"`
	OptionImage3     string          `json:"optionImage3,omitempty"`
	InstructorID     *int64          `json:"instructorId"`
	Instructor       *Instructor     `json:"instructor,omitempty"`
	Accommodations   []Accommodation `json:"accommodations,omitempty"`
	CreatedAt        Timestamp       `json:"createdAt"`
}

func (c Course) Key() int64 { return c.ID }

// PriceValue returns the price, treating a missing price as zero.
func (c Course) PriceValue() float64 {
	if c.Price == nil {
		return 0
	}
	return *c.Price
}

// ReferencesInstructor reports whether the course is taught by the instructor.
func (c Course) ReferencesInstructor(instructorID int64) bool {
	if c.InstructorID != nil && *c.InstructorID == instructorID {
		return true
	}
	return c.Instructor != nil && c.Instructor.ID == instructorID
}

// InstructorKey returns the referenced instructor id, or zero.
func (c Course) InstructorKey() int64 {
	if c.InstructorID != nil {
		return *c.InstructorID
	}
	if c.Instructor != nil {
		return c.Instructor.ID
	}
	return 0
}

// AccommodationIDs lists the ids of the linked accommodations.
func (c Course) AccommodationIDs() []int64 {
	ids := make([]int64, 0, len(c.Accommodations))
	for _, a := range c.Accommodations {
		ids = append(ids, a.ID)
	}
	return ids
}
