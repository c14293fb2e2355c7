package forms

import (
	"fmt"
	"strings"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
	"github.com/yigit/courseadmin/internal/pkg/validation"
)

// CourseSteps are the pages of the course form.
var CourseSteps = []string{"Course details", "Images", "Accommodations"}

// Image slots of a course. Slot 0 is the card image, 1-3 the option images.
const (
	SlotCard = iota
	SlotOption1
	SlotOption2
	SlotOption3
	courseSlots
)

// CourseDraft is the editable state of the course form.
type CourseDraft struct {
	Title            string   `json:"title" label:"Title" validate:"notblank"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Price            *float64 `json:"price" label:"Price" validate:"omitempty,nonneg"`
	Rating           *float64 `json:"rating" label:"Rating" validate:"omitempty,min=0,max=5"`
	Category         string   `json:"category"`
	Schedule         string   `json:"schedule"`
	Duration         string   `json:"duration"`
	Mode             string   `json:"mode"`
	IsVisible        bool     `json:"isVisible"`
	InstructorID     *int64   `json:"instructorId"`
	AccommodationIDs []int64  `json:"accommodationIds"`

	// Images currently stored for the course, by slot.
	ImageURLs [courseSlots]string `json:"imageUrls"`
	Remove    [courseSlots]bool   `json:"remove"`

	Uploads [courseSlots]*filestorage.Upload `json:"-"`
}

// BlankCourse returns the create defaults. New courses are visible.
func BlankCourse() CourseDraft {
	return CourseDraft{IsVisible: true, AccommodationIDs: []int64{}}
}

// CourseFromRecord seeds the form from a stored course.
func CourseFromRecord(c models.Course) CourseDraft {
	d := CourseDraft{
		Title:            c.Title,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		Price:            c.Price,
		Rating:           c.Rating,
		Category:         c.Category,
		Schedule:         c.Schedule,
		Duration:         c.Duration,
		Mode:             c.Mode,
		IsVisible:        c.IsVisible,
		AccommodationIDs: c.AccommodationIDs(),
		ImageURLs:        [courseSlots]string{c.ImageURL, c.OptionImage1, c.OptionImage2, c.OptionImage3},
	}
	if id := c.InstructorKey(); id != 0 {
		d.InstructorID = &id
	}
	return d
}

// ToggleAccommodation links or unlinks an accommodation.
func (d *CourseDraft) ToggleAccommodation(id int64) {
	for i, existing := range d.AccommodationIDs {
		if existing == id {
			d.AccommodationIDs = append(d.AccommodationIDs[:i:i], d.AccommodationIDs[i+1:]...)
			return
		}
	}
	d.AccommodationIDs = append(d.AccommodationIDs, id)
}

// SetImage stages a new image for slot, cancelling a pending removal.
func (d *CourseDraft) SetImage(slot int, up *filestorage.Upload) error {
	if slot < 0 || slot >= courseSlots {
		return fmt.Errorf("unknown image slot %d", slot)
	}
	d.Uploads[slot] = up
	d.Remove[slot] = false
	return nil
}

// RemoveImage drops the staged or stored image of slot.
func (d *CourseDraft) RemoveImage(slot int) error {
	if slot < 0 || slot >= courseSlots {
		return fmt.Errorf("unknown image slot %d", slot)
	}
	d.Uploads[slot] = nil
	d.Remove[slot] = true
	d.ImageURLs[slot] = ""
	return nil
}

// Validate checks the draft. Only the title is mandatory.
func (d CourseDraft) Validate() error {
	return validation.Check(d)
}

// Request builds the JSON part of the submission.
func (d CourseDraft) Request() dto.CourseRequest {
	ids := d.AccommodationIDs
	if ids == nil {
		ids = []int64{}
	}
	return dto.CourseRequest{
		Title:            strings.TrimSpace(d.Title),
		ShortDescription: d.ShortDescription,
		LongDescription:  d.LongDescription,
		Price:            d.Price,
		Rating:           d.Rating,
		Category:         strings.TrimSpace(d.Category),
		Schedule:         d.Schedule,
		Duration:         d.Duration,
		Mode:             d.Mode,
		IsVisible:        d.IsVisible,
		InstructorID:     d.InstructorID,
		AccommodationIDs: ids,
	}
}

// Files returns the staged uploads and removal flags.
func (d CourseDraft) Files() repositories.CourseFiles {
	return repositories.CourseFiles{
		Image:         d.Uploads[SlotCard],
		Options:       [3]*filestorage.Upload{d.Uploads[SlotOption1], d.Uploads[SlotOption2], d.Uploads[SlotOption3]},
		RemoveImage:   d.Remove[SlotCard],
		RemoveOptions: [3]bool{d.Remove[SlotOption1], d.Remove[SlotOption2], d.Remove[SlotOption3]},
	}
}
