package repositories

import (
	"context"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

// MediaRepository serves the collections submitted as a JSON form field plus
// one optional image: instructors, accommodations, testimonials and gallery.
type MediaRepository[T models.Record] struct {
	res resource[T]
	// part names the JSON form field, file the image field
	part string
	file string
}

func newMediaRepository[T models.Record](client *Client, collection, part, file string) *MediaRepository[T] {
	return &MediaRepository[T]{
		res:  resource[T]{client: client, name: collection},
		part: part,
		file: file,
	}
}

// NewInstructorRepository creates the instructor repository
func NewInstructorRepository(client *Client) *MediaRepository[models.Instructor] {
	return newMediaRepository[models.Instructor](client, "instructors", "instructor", "photo")
}

// NewAccommodationRepository creates the accommodation repository
func NewAccommodationRepository(client *Client) *MediaRepository[models.Accommodation] {
	return newMediaRepository[models.Accommodation](client, "accommodations", "accommodation", "image")
}

// NewTestimonialRepository creates the testimonial repository
func NewTestimonialRepository(client *Client) *MediaRepository[models.Testimonial] {
	return newMediaRepository[models.Testimonial](client, "testimonials", "testimonial", "photo")
}

// NewGalleryRepository creates the gallery repository
func NewGalleryRepository(client *Client) *MediaRepository[models.GalleryItem] {
	return newMediaRepository[models.GalleryItem](client, "gallery", "gallery", "image")
}

// List returns every record
func (r *MediaRepository[T]) List(ctx context.Context) ([]T, error) {
	return r.res.list(ctx, nil)
}

// GetByID returns one record
func (r *MediaRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	return r.res.get(ctx, id)
}

// Create submits body with an optional image
func (r *MediaRepository[T]) Create(ctx context.Context, body interface{}, image *filestorage.Upload) (T, error) {
	return r.res.createMultipart(ctx, r.form(body, image))
}

// Update replaces the record; a nil image keeps the stored one
func (r *MediaRepository[T]) Update(ctx context.Context, id int64, body interface{}, image *filestorage.Upload) (T, error) {
	return r.res.updateMultipart(ctx, id, r.form(body, image))
}

// Delete removes the record
func (r *MediaRepository[T]) Delete(ctx context.Context, id int64) error {
	return r.res.delete(ctx, id)
}

func (r *MediaRepository[T]) form(body interface{}, image *filestorage.Upload) multipartForm {
	return multipartForm{
		part:  r.part,
		body:  body,
		files: map[string]*filestorage.Upload{r.file: image},
	}
}
