package forms

import (
	"strings"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
	"github.com/yigit/courseadmin/internal/pkg/validation"
)

// InstructorDraft is the editable state of the instructor form.
type InstructorDraft struct {
	Name        string `json:"name" label:"Name" validate:"notblank"`
	Role        string `json:"role" label:"Role" validate:"notblank"`
	Description string `json:"description" label:"Bio" validate:"notblank"`
	ImageURL    string `json:"imageUrl,omitempty"`

	Photo *filestorage.Upload `json:"-"`
}

// InstructorFromRecord seeds the form from a stored instructor.
func InstructorFromRecord(i models.Instructor) InstructorDraft {
	return InstructorDraft{Name: i.Name, Role: i.Role, Description: i.Description, ImageURL: i.ImageURL}
}

func (d InstructorDraft) Validate() error { return validation.Check(d) }

func (d InstructorDraft) Request() dto.InstructorRequest {
	return dto.InstructorRequest{
		Name:        strings.TrimSpace(d.Name),
		Role:        strings.TrimSpace(d.Role),
		Description: strings.TrimSpace(d.Description),
	}
}

// Upload returns the staged photo, if any.
func (d InstructorDraft) Upload() *filestorage.Upload { return d.Photo }

// AccommodationDraft is the editable state of the accommodation form.
type AccommodationDraft struct {
	Type     string   `json:"type" label:"Type" validate:"notblank"`
	Price    *float64 `json:"price" label:"Price" validate:"required,nonneg"`
	ImageURL string   `json:"imageUrl,omitempty"`

	Image *filestorage.Upload `json:"-"`
}

// BlankAccommodation returns the create defaults.
func BlankAccommodation() AccommodationDraft {
	return AccommodationDraft{Price: float(0)}
}

// AccommodationFromRecord seeds the form from a stored accommodation.
func AccommodationFromRecord(a models.Accommodation) AccommodationDraft {
	return AccommodationDraft{Type: a.Type, Price: float(a.Price), ImageURL: a.ImageURL}
}

func (d AccommodationDraft) Validate() error { return validation.Check(d) }

func (d AccommodationDraft) Request() dto.AccommodationRequest {
	req := dto.AccommodationRequest{Type: strings.TrimSpace(d.Type)}
	if d.Price != nil {
		req.Price = *d.Price
	}
	return req
}

// Upload returns the staged image, if any.
func (d AccommodationDraft) Upload() *filestorage.Upload { return d.Image }

// TestimonialDraft is the editable state of the testimonial form.
type TestimonialDraft struct {
	Name     string `json:"name" label:"Name" validate:"notblank"`
	Feedback string `json:"feedback" label:"Feedback" validate:"notblank"`
	Rating   int    `json:"rating" label:"Rating" validate:"min=1,max=5"`
	PhotoURL string `json:"photoUrl,omitempty"`

	Photo *filestorage.Upload `json:"-"`
}

// BlankTestimonial returns the create defaults.
func BlankTestimonial() TestimonialDraft {
	return TestimonialDraft{Rating: 1}
}

// TestimonialFromRecord seeds the form from a stored testimonial.
func TestimonialFromRecord(t models.Testimonial) TestimonialDraft {
	return TestimonialDraft{Name: t.Name, Feedback: t.Feedback, Rating: t.Rating, PhotoURL: t.PhotoURL}
}

func (d TestimonialDraft) Validate() error { return validation.Check(d) }

func (d TestimonialDraft) Request() dto.TestimonialRequest {
	return dto.TestimonialRequest{
		Name:     strings.TrimSpace(d.Name),
		Feedback: strings.TrimSpace(d.Feedback),
		Rating:   d.Rating,
	}
}

// Upload returns the staged photo, if any.
func (d TestimonialDraft) Upload() *filestorage.Upload { return d.Photo }

// GalleryDraft is the editable state of the gallery form.
type GalleryDraft struct {
	Category string `json:"category" label:"Category" validate:"notblank"`
	ImageURL string `json:"imageUrl,omitempty"`

	Image *filestorage.Upload `json:"-"`
}

// GalleryFromRecord seeds the form from a stored item.
func GalleryFromRecord(g models.GalleryItem) GalleryDraft {
	return GalleryDraft{Category: g.Category, ImageURL: g.ImageURL}
}

// Validate requires a category and an image, either staged or already stored.
func (d GalleryDraft) Validate() error {
	if err := validation.Check(d); err != nil {
		return err
	}
	if d.Image == nil && d.ImageURL == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Image is required").
			WithDetails(map[string]interface{}{"image": "Image is required"}).
			WithCode("VAL_001")
	}
	return nil
}

func (d GalleryDraft) Request() dto.GalleryRequest {
	return dto.GalleryRequest{Category: strings.TrimSpace(d.Category)}
}

// Upload returns the staged image, if any.
func (d GalleryDraft) Upload() *filestorage.Upload { return d.Image }
