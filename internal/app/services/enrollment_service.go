package services

import (
	"context"
	"time"

	"github.com/yigit/courseadmin/internal/app/forms"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/pricing"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/collection"
)

// Enrollment filter keys
const (
	FilterStatus = "status"
	FilterCourse = "course"
)

// EnrollmentFilters are the filter keys the enrollment list understands.
var EnrollmentFilters = []string{FilterStatus, FilterCourse}

// EnrollmentService manages enrollments. Totals are always quoted from the
// current course and accommodation lists when a form is submitted.
type EnrollmentService struct {
	*Resource[models.Enrollment, forms.EnrollmentDraft]
	repo           *repositories.EnrollmentRepository
	courses        *Listing[models.Course]
	accommodations *Listing[models.Accommodation]
}

// NewEnrollmentService creates the enrollment service
func NewEnrollmentService(
	repo *repositories.EnrollmentRepository,
	courses *Listing[models.Course],
	accommodations *Listing[models.Accommodation],
	pageSize int,
	deps Deps,
) *EnrollmentService {
	s := &EnrollmentService{repo: repo, courses: courses, accommodations: accommodations}

	listing := ListingConfig[models.Enrollment]{
		Name:     "enrollment",
		PageSize: pageSize,
		Create:   collection.CreateRefresh,
		Delete:   collection.DeletePessimistic,
		Load:     repo.List,
		Get:      repo.GetByID,
		Remove:   repo.Delete,
		Criteria: enrollmentCriteria,
		Order: func(items []models.Enrollment) []models.Enrollment {
			return collection.SortNewest(items, func(e models.Enrollment) time.Time { return e.CreatedAt.Time })
		},
		Texts: Texts{
			Created:      "Enrollment added",
			Updated:      "Enrollment updated",
			Deleted:      "Enrollment deleted",
			DeleteFailed: "Delete failed",
			LoadFailed:   "Failed to fetch enrollments",
		},
	}

	form := FormConfig[models.Enrollment, forms.EnrollmentDraft]{
		Seed: forms.EnrollmentFromRecord,
		Create: func(ctx context.Context, d forms.EnrollmentDraft) (models.Enrollment, error) {
			q, err := s.Quote(ctx, d)
			if err != nil {
				return models.Enrollment{}, err
			}
			return repo.Create(ctx, d.Request(q))
		},
		Update: func(ctx context.Context, id int64, d forms.EnrollmentDraft) (models.Enrollment, error) {
			q, err := s.Quote(ctx, d)
			if err != nil {
				return models.Enrollment{}, err
			}
			return repo.Update(ctx, id, d.Request(q))
		},
	}

	s.Resource = NewResource(listing, form, deps)
	return s
}

func enrollmentCriteria(q collection.Query) []collection.Predicate[models.Enrollment] {
	status := q.Filter(FilterStatus)
	course := q.Filter(FilterCourse)

	preds := []collection.Predicate[models.Enrollment]{func(e models.Enrollment) bool {
		return collection.MatchText(q.Search, e.FullName, e.Email, e.Phone) &&
			collection.MatchExact(status, string(e.PaymentStatus)) &&
			collection.MatchExact(course, e.CourseTitle)
	}}
	if q.Range.Active() {
		preds = append(preds, func(e models.Enrollment) bool { return q.Range.Contains(e.CreatedAt.Time) })
	}
	if q.Today {
		preds = append(preds, func(e models.Enrollment) bool {
			return !e.CreatedAt.IsZero() && q.IsToday(e.CreatedAt.Time)
		})
	}
	return preds
}

// Quote prices d against the current course and accommodation lists.
func (s *EnrollmentService) Quote(ctx context.Context, d forms.EnrollmentDraft) (pricing.Quote, error) {
	courses, err := s.courses.Items(ctx)
	if err != nil {
		return pricing.Quote{}, err
	}
	var accommodations []models.Accommodation
	if d.AccommodationID != nil {
		if accommodations, err = s.accommodations.Items(ctx); err != nil {
			return pricing.Quote{}, err
		}
	}
	return d.Quote(courses, accommodations)
}

// CourseTitles lists the distinct course titles present in the enrollments,
// for the course filter.
func (s *EnrollmentService) CourseTitles(ctx context.Context) ([]string, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var titles []string
	for _, e := range items {
		if e.CourseTitle != "" && !seen[e.CourseTitle] {
			seen[e.CourseTitle] = true
			titles = append(titles, e.CourseTitle)
		}
	}
	return titles, nil
}

// SetPayment changes the payment status of enrollment id optimistically.
// Marking as paid also switches the payment mode to ONLINE and sends the whole
// record; other changes use the payment endpoint.
func (s *EnrollmentService) SetPayment(ctx context.Context, id int64, status models.PaymentStatus) (models.Enrollment, error) {
	if !status.Valid() {
		return models.Enrollment{}, apperrors.NewBadRequestError("Unknown payment status " + string(status))
	}

	msgs := collection.Messages{Success: "Payment status updated", Failure: "Failed to update payment"}
	if status == models.PaymentPaid {
		msgs.Success = "Marked as Paid"
	}

	return s.patch(ctx, id,
		func(e models.Enrollment) models.Enrollment {
			e.PaymentStatus = status
			if status == models.PaymentPaid {
				e.PaymentMode = models.PayOnline
			}
			return e
		},
		func(ctx context.Context, patched models.Enrollment) (models.Enrollment, error) {
			if status == models.PaymentPaid {
				return s.repo.Update(ctx, id, recordRequest(patched))
			}
			return s.repo.UpdatePayment(ctx, id, status)
		},
		msgs)
}

// MarkPaid sets PAID and ONLINE.
func (s *EnrollmentService) MarkPaid(ctx context.Context, id int64) (models.Enrollment, error) {
	return s.SetPayment(ctx, id, models.PaymentPaid)
}

func recordRequest(e models.Enrollment) dto.EnrollmentRequest {
	return dto.EnrollmentRequest{
		FullName:        e.FullName,
		Email:           e.Email,
		Phone:           e.Phone,
		Gender:          e.Gender,
		Country:         e.Country,
		CourseID:        e.CourseID,
		AccommodationID: e.AccommodationID,
		PaymentMode:     e.PaymentMode,
		PaymentStatus:   e.PaymentStatus,
		TotalPrice:      e.TotalPrice,
	}
}
