package forms

import (
	"strings"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/pricing"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/validation"
)

// EnrollmentDraft is the editable state of the enrollment form. Phone is
// optional.
type EnrollmentDraft struct {
	FullName        string             `json:"fullName" label:"Full name" validate:"notblank"`
	Email           string             `json:"email" label:"Email" validate:"notblank"`
	Phone           string             `json:"phone"`
	Gender          string             `json:"gender" label:"Gender" validate:"notblank"`
	Country         string             `json:"country" label:"Country" validate:"notblank"`
	CourseID        int64              `json:"courseId" label:"a course" validate:"selected"`
	AccommodationID *int64             `json:"accommodationId"`
	PaymentMode     models.PaymentMode `json:"paymentMode" label:"payment mode" validate:"selected,oneof=PAY_NOW PAY_LATER ONLINE"`
}

// EnrollmentFromRecord seeds the form from a stored enrollment.
func EnrollmentFromRecord(e models.Enrollment) EnrollmentDraft {
	return EnrollmentDraft{
		FullName:        e.FullName,
		Email:           e.Email,
		Phone:           e.Phone,
		Gender:          e.Gender,
		Country:         e.Country,
		CourseID:        e.CourseID,
		AccommodationID: e.AccommodationID,
		PaymentMode:     e.PaymentMode,
	}
}

func (d EnrollmentDraft) Validate() error { return validation.Check(d) }

// Quote prices the draft against the current course and accommodation lists.
func (d EnrollmentDraft) Quote(courses []models.Course, accommodations []models.Accommodation) (pricing.Quote, error) {
	course, ok := findByKey(courses, d.CourseID)
	if !ok {
		return pricing.Quote{}, apperrors.NewResourceNotFoundError("Selected course not found")
	}

	var perDay float64
	var hasAccommodation bool
	if d.AccommodationID != nil {
		acc, ok := findByKey(accommodations, *d.AccommodationID)
		if !ok {
			return pricing.Quote{}, apperrors.NewResourceNotFoundError("Selected accommodation not found")
		}
		perDay, hasAccommodation = acc.Price, true
	}

	return pricing.Calculate(course.PriceValue(), course.Duration, perDay, hasAccommodation), nil
}

// Request builds the submission with the quoted total.
func (d EnrollmentDraft) Request(q pricing.Quote) dto.EnrollmentRequest {
	return dto.EnrollmentRequest{
		FullName:        strings.TrimSpace(d.FullName),
		Email:           strings.TrimSpace(d.Email),
		Phone:           strings.TrimSpace(d.Phone),
		Gender:          d.Gender,
		Country:         strings.TrimSpace(d.Country),
		CourseID:        d.CourseID,
		AccommodationID: d.AccommodationID,
		PaymentMode:     d.PaymentMode,
		TotalPrice:      q.TotalPrice,
	}
}

func findByKey[T models.Record](items []T, id int64) (T, bool) {
	for _, item := range items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
