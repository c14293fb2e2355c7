package services

import (
	"context"

	"github.com/yigit/courseadmin/internal/app/forms"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/collection"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

// AccommodationService manages accommodations
type AccommodationService = Resource[models.Accommodation, forms.AccommodationDraft]

// TestimonialService manages testimonials
type TestimonialService = Resource[models.Testimonial, forms.TestimonialDraft]

// GalleryService manages gallery items
type GalleryService = Resource[models.GalleryItem, forms.GalleryDraft]

// NewAccommodationService creates the accommodation service
func NewAccommodationService(repo *repositories.MediaRepository[models.Accommodation], pageSize int, deps Deps) *AccommodationService {
	listing := ListingConfig[models.Accommodation]{
		Name:     "accommodation",
		PageSize: pageSize,
		Create:   collection.CreateRefresh,
		Delete:   collection.DeletePessimistic,
		Load:     repo.List,
		Get:      repo.GetByID,
		Remove:   repo.Delete,
		Criteria: func(q collection.Query) []collection.Predicate[models.Accommodation] {
			return []collection.Predicate[models.Accommodation]{func(a models.Accommodation) bool {
				return collection.MatchText(q.Search, a.Type)
			}}
		},
		Texts: Texts{
			Created:      "Accommodation added successfully",
			Updated:      "Accommodation updated successfully",
			Deleted:      "Accommodation deleted successfully",
			DeleteFailed: "Failed to delete accommodation",
			LoadFailed:   "Failed to fetch accommodations",
		},
	}

	return NewResource(listing, FormConfig[models.Accommodation, forms.AccommodationDraft]{
		Blank: forms.BlankAccommodation,
		Seed:  forms.AccommodationFromRecord,
		Create: func(ctx context.Context, d forms.AccommodationDraft) (models.Accommodation, error) {
			return repo.Create(ctx, d.Request(), d.Upload())
		},
		Update: func(ctx context.Context, id int64, d forms.AccommodationDraft) (models.Accommodation, error) {
			return repo.Update(ctx, id, d.Request(), d.Upload())
		},
		Attach: func(d forms.AccommodationDraft, up *filestorage.Upload) forms.AccommodationDraft {
			d.Image = up
			return d
		},
		Carry: func(prev, next forms.AccommodationDraft) forms.AccommodationDraft {
			next.Image = prev.Image
			return next
		},
	}, deps)
}

// NewTestimonialService creates the testimonial service
func NewTestimonialService(repo *repositories.MediaRepository[models.Testimonial], pageSize int, deps Deps) *TestimonialService {
	listing := ListingConfig[models.Testimonial]{
		Name:     "testimonial",
		PageSize: pageSize,
		Create:   collection.CreateRefresh,
		Delete:   collection.DeletePessimistic,
		Load:     repo.List,
		Get:      repo.GetByID,
		Remove:   repo.Delete,
		Criteria: func(q collection.Query) []collection.Predicate[models.Testimonial] {
			return []collection.Predicate[models.Testimonial]{func(t models.Testimonial) bool {
				return collection.MatchText(q.Search, t.Name, t.Feedback)
			}}
		},
		Texts: Texts{
			Created:      "Testimonial added successfully",
			Updated:      "Testimonial updated successfully",
			Deleted:      "Testimonial deleted successfully",
			DeleteFailed: "Failed to delete testimonial",
			LoadFailed:   "Failed to fetch testimonials",
		},
	}

	return NewResource(listing, FormConfig[models.Testimonial, forms.TestimonialDraft]{
		Blank: forms.BlankTestimonial,
		Seed:  forms.TestimonialFromRecord,
		Create: func(ctx context.Context, d forms.TestimonialDraft) (models.Testimonial, error) {
			return repo.Create(ctx, d.Request(), d.Upload())
		},
		Update: func(ctx context.Context, id int64, d forms.TestimonialDraft) (models.Testimonial, error) {
			return repo.Update(ctx, id, d.Request(), d.Upload())
		},
		Attach: func(d forms.TestimonialDraft, up *filestorage.Upload) forms.TestimonialDraft {
			d.Photo = up
			return d
		},
		Carry: func(prev, next forms.TestimonialDraft) forms.TestimonialDraft {
			next.Photo = prev.Photo
			return next
		},
	}, deps)
}

// NewGalleryService creates the gallery service
func NewGalleryService(repo *repositories.MediaRepository[models.GalleryItem], pageSize int, deps Deps) *GalleryService {
	listing := ListingConfig[models.GalleryItem]{
		Name:     "gallery",
		PageSize: pageSize,
		Create:   collection.CreateRefresh,
		Delete:   collection.DeletePessimistic,
		Load:     repo.List,
		Get:      repo.GetByID,
		Remove:   repo.Delete,
		Criteria: func(q collection.Query) []collection.Predicate[models.GalleryItem] {
			category := q.Filter("category")
			return []collection.Predicate[models.GalleryItem]{func(g models.GalleryItem) bool {
				return collection.MatchText(q.Search, g.Category) && collection.MatchExact(category, g.Category)
			}}
		},
		Texts: Texts{
			Created:      "Gallery added successfully!",
			Updated:      "Gallery updated successfully!",
			Deleted:      "Gallery deleted successfully!",
			DeleteFailed: "Delete failed",
			LoadFailed:   "Failed to fetch gallery",
		},
	}

	return NewResource(listing, FormConfig[models.GalleryItem, forms.GalleryDraft]{
		Seed: forms.GalleryFromRecord,
		Create: func(ctx context.Context, d forms.GalleryDraft) (models.GalleryItem, error) {
			return repo.Create(ctx, d.Request(), d.Upload())
		},
		Update: func(ctx context.Context, id int64, d forms.GalleryDraft) (models.GalleryItem, error) {
			return repo.Update(ctx, id, d.Request(), d.Upload())
		},
		Attach: func(d forms.GalleryDraft, up *filestorage.Upload) forms.GalleryDraft {
			d.Image = up
			return d
		},
		Carry: func(prev, next forms.GalleryDraft) forms.GalleryDraft {
			next.Image = prev.Image
			return next
		},
	}, deps)
}
