package services

import (
	"context"

	"github.com/yigit/courseadmin/internal/app/forms"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/collection"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

// InstructorService manages instructors. An instructor taught by any course
// cannot be deleted.
type InstructorService struct {
	*Resource[models.Instructor, forms.InstructorDraft]
	courses *Listing[models.Course]
}

// NewInstructorService creates the instructor service. courses is scanned
// before every delete.
func NewInstructorService(repo *repositories.MediaRepository[models.Instructor], courses *Listing[models.Course], pageSize int, deps Deps) *InstructorService {
	s := &InstructorService{courses: courses}

	listing := ListingConfig[models.Instructor]{
		Name:     "instructor",
		PageSize: pageSize,
		Create:   collection.CreateRefresh,
		Delete:   collection.DeletePessimistic,
		Load:     repo.List,
		Get:      repo.GetByID,
		Remove:   repo.Delete,
		Guard:    s.ensureUnassigned,
		Criteria: func(q collection.Query) []collection.Predicate[models.Instructor] {
			return []collection.Predicate[models.Instructor]{func(i models.Instructor) bool {
				return collection.MatchText(q.Search, i.Name, i.Role)
			}}
		},
		Texts: Texts{
			Created:      "Instructor added successfully",
			Updated:      "Instructor updated successfully",
			Deleted:      "Instructor deleted successfully",
			DeleteFailed: "Failed to delete instructor",
			LoadFailed:   "Failed to fetch instructors",
		},
	}

	form := FormConfig[models.Instructor, forms.InstructorDraft]{
		Seed: forms.InstructorFromRecord,
		Create: func(ctx context.Context, d forms.InstructorDraft) (models.Instructor, error) {
			return repo.Create(ctx, d.Request(), d.Upload())
		},
		Update: func(ctx context.Context, id int64, d forms.InstructorDraft) (models.Instructor, error) {
			return repo.Update(ctx, id, d.Request(), d.Upload())
		},
		Attach: func(d forms.InstructorDraft, up *filestorage.Upload) forms.InstructorDraft {
			d.Photo = up
			return d
		},
		Carry: func(prev, next forms.InstructorDraft) forms.InstructorDraft {
			next.Photo = prev.Photo
			return next
		},
	}

	s.Resource = NewResource(listing, form, deps)
	return s
}

// ensureUnassigned refuses the delete when any course references id. The
// course list is loaded first if needed.
func (s *InstructorService) ensureUnassigned(ctx context.Context, id int64) error {
	courses, err := s.courses.Items(ctx)
	if err != nil {
		return err
	}
	for _, c := range courses {
		if c.ReferencesInstructor(id) {
			return apperrors.NewCustomError(apperrors.ErrIntegrityViolation, apperrors.MsgInstructorInUse).
				WithDetails(map[string]interface{}{"instructorId": id, "courseId": c.ID}).
				WithCode("INT_001")
		}
	}
	return nil
}
