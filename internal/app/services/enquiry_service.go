package services

import (
	"context"
	"time"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/collection"
)

// EnquiryService handles enquiries sent from the public site. The console
// only moves them through their statuses or deletes them.
type EnquiryService struct {
	*Listing[models.Enquiry]
	repo *repositories.EnquiryRepository
}

// NewEnquiryService creates the enquiry service
func NewEnquiryService(repo *repositories.EnquiryRepository, pageSize int, deps Deps) *EnquiryService {
	listing := ListingConfig[models.Enquiry]{
		Name:     "enquiry",
		PageSize: pageSize,
		Delete:   collection.DeletePessimistic,
		Load:     repo.List,
		Get:      repo.GetByID,
		Remove:   repo.Delete,
		Criteria: func(q collection.Query) []collection.Predicate[models.Enquiry] {
			status := q.Filter(FilterStatus)
			return []collection.Predicate[models.Enquiry]{func(e models.Enquiry) bool {
				return collection.MatchText(q.Search, e.Name, e.Email, e.Message) &&
					collection.MatchExact(status, string(e.Status))
			}}
		},
		Order: func(items []models.Enquiry) []models.Enquiry {
			return collection.SortNewest(items, func(e models.Enquiry) time.Time { return e.CreatedAt.Time })
		},
		Texts: Texts{
			Deleted:      "Enquiry deleted",
			DeleteFailed: "Delete failed",
			LoadFailed:   "Failed to fetch enquiries",
		},
	}

	return &EnquiryService{Listing: NewListing(listing, deps), repo: repo}
}

// SetStatus moves enquiry id to status, reverting locally if the backend fails.
func (s *EnquiryService) SetStatus(ctx context.Context, id int64, status models.EnquiryStatus) (models.Enquiry, error) {
	if !status.Valid() {
		return models.Enquiry{}, apperrors.NewBadRequestError("Unknown enquiry status " + string(status))
	}

	return s.patch(ctx, id,
		func(e models.Enquiry) models.Enquiry {
			e.Status = status
			return e
		},
		func(ctx context.Context, _ models.Enquiry) (models.Enquiry, error) {
			return s.repo.UpdateStatus(ctx, id, status)
		},
		collection.Messages{Success: "Status updated", Failure: "Failed to update status"})
}
