package repositories

import (
	"context"
	"net/http"
	"strconv"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

// CourseFiles are the images sent with a course. On update a nil upload keeps
// the stored image unless the matching Remove flag is set.
type CourseFiles struct {
	Image   *filestorage.Upload
	Options [3]*filestorage.Upload

	RemoveImage   bool
	RemoveOptions [3]bool
}

func (f CourseFiles) uploads() map[string]*filestorage.Upload {
	files := map[string]*filestorage.Upload{"image": f.Image}
	for i, up := range f.Options {
		files["optionImage"+strconv.Itoa(i+1)] = up
	}
	return files
}

func (f CourseFiles) flags() map[string]bool {
	flags := map[string]bool{"removeImage": f.RemoveImage && f.Image == nil}
	for i, remove := range f.RemoveOptions {
		flags["removeOptionImage"+strconv.Itoa(i+1)] = remove && f.Options[i] == nil
	}
	return flags
}

// CourseRepository calls the course endpoints
type CourseRepository struct {
	res         resource[models.Course]
	onlyVisible bool
}

// NewCourseRepository creates a course repository. onlyVisible is forwarded to
// the list endpoint.
func NewCourseRepository(client *Client, onlyVisible bool) *CourseRepository {
	return &CourseRepository{
		res:         resource[models.Course]{client: client, name: "courses"},
		onlyVisible: onlyVisible,
	}
}

// List returns every course
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	return r.res.list(ctx, map[string]string{"onlyVisible": strconv.FormatBool(r.onlyVisible)})
}

// GetByID returns a single course
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (models.Course, error) {
	return r.res.get(ctx, id)
}

// Create submits a new course with its images
func (r *CourseRepository) Create(ctx context.Context, req dto.CourseRequest, files CourseFiles) (models.Course, error) {
	return r.res.createMultipart(ctx, multipartForm{
		part:      "course",
		body:      req,
		typedPart: true,
		files:     files.uploads(),
	})
}

// Update replaces a course, adding, replacing or removing images per files
func (r *CourseRepository) Update(ctx context.Context, id int64, req dto.CourseRequest, files CourseFiles) (models.Course, error) {
	return r.res.updateMultipart(ctx, id, multipartForm{
		part:      "course",
		body:      req,
		typedPart: true,
		files:     files.uploads(),
		flags:     files.flags(),
	})
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return r.res.delete(ctx, id)
}

// ToggleVisibility flips isVisible on the backend and returns the stored course
func (r *CourseRepository) ToggleVisibility(ctx context.Context, id int64) (models.Course, error) {
	var out models.Course
	err := r.res.client.do(ctx, http.MethodPatch, itemPath("courses", id, "visibility"), nil, &out)
	return out, err
}
