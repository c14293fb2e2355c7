package services

import (
	"context"
	"sync"

	"github.com/yigit/courseadmin/internal/app/forms"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/collection"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

// CourseService manages courses: the three-step form, visibility and deletes.
type CourseService struct {
	*Resource[models.Course, forms.CourseDraft]
	repo *repositories.CourseRepository

	mu     sync.Mutex
	wizard *forms.Wizard
}

// NewCourseService creates the course service
func NewCourseService(repo *repositories.CourseRepository, pageSize int, deps Deps) *CourseService {
	listing := ListingConfig[models.Course]{
		Name:     "course",
		PageSize: pageSize,
		Create:   collection.CreateAppend,
		Delete:   collection.DeleteOptimistic,
		Load:     repo.List,
		Get:      repo.GetByID,
		Remove:   repo.Delete,
		Criteria: func(q collection.Query) []collection.Predicate[models.Course] {
			category := q.Filter("category")
			return []collection.Predicate[models.Course]{func(c models.Course) bool {
				return collection.MatchText(q.Search, c.Title, c.Category) &&
					collection.MatchExact(category, c.Category)
			}}
		},
		Texts: Texts{
			Created:      "Course created",
			Updated:      "Course updated",
			Deleted:      "Course deleted",
			SaveFailed:   "Operation failed",
			DeleteFailed: "Delete failed",
			LoadFailed:   "Failed to load courses",
		},
	}

	form := FormConfig[models.Course, forms.CourseDraft]{
		Blank: forms.BlankCourse,
		Seed:  forms.CourseFromRecord,
		Create: func(ctx context.Context, d forms.CourseDraft) (models.Course, error) {
			return repo.Create(ctx, d.Request(), d.Files())
		},
		Update: func(ctx context.Context, id int64, d forms.CourseDraft) (models.Course, error) {
			return repo.Update(ctx, id, d.Request(), d.Files())
		},
		Carry: func(prev, next forms.CourseDraft) forms.CourseDraft {
			next.Uploads = prev.Uploads
			return next
		},
	}

	return &CourseService{
		Resource: NewResource(listing, form, deps),
		repo:     repo,
		wizard:   forms.NewWizard(forms.CourseSteps...),
	}
}

// OpenCreate toggles the create form and rewinds the wizard.
func (s *CourseService) OpenCreate() collection.EditorState[forms.CourseDraft] {
	s.resetWizard()
	return s.Resource.OpenCreate()
}

// Edit opens course id on the first step.
func (s *CourseService) Edit(ctx context.Context, id int64) (collection.EditorState[forms.CourseDraft], error) {
	state, err := s.Resource.Edit(ctx, id)
	if err == nil {
		s.resetWizard()
	}
	return state, err
}

// Step reports the wizard position as (current, total, title).
func (s *CourseService) Step() (int, int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Step(), s.wizard.Steps(), s.wizard.Title()
}

// NextStep advances the form. Fields are not validated between steps.
func (s *CourseService) NextStep() (int, error) {
	if !s.EditorState().Open() {
		return 0, errNoOpenForm
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Next(), nil
}

// PrevStep goes back one step.
func (s *CourseService) PrevStep() (int, error) {
	if !s.EditorState().Open() {
		return 0, errNoOpenForm
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Back(), nil
}

// Submit saves the course from the last step of the form.
func (s *CourseService) Submit(ctx context.Context) (models.Course, error) {
	s.mu.Lock()
	final := s.wizard.Final()
	s.mu.Unlock()
	if s.EditorState().Open() && !final {
		return models.Course{}, apperrors.NewBadRequestError("Continue to the last step to save the course")
	}

	course, err := s.Resource.Submit(ctx)
	if err == nil {
		s.resetWizard()
	}
	return course, err
}

// StageImage sets the image of slot on the open draft.
func (s *CourseService) StageImage(slot int, up *filestorage.Upload) (collection.EditorState[forms.CourseDraft], error) {
	return s.editDraft(func(d *forms.CourseDraft) error { return d.SetImage(slot, up) })
}

// DropImage removes the image of slot from the open draft.
func (s *CourseService) DropImage(slot int) (collection.EditorState[forms.CourseDraft], error) {
	return s.editDraft(func(d *forms.CourseDraft) error { return d.RemoveImage(slot) })
}

// ToggleAccommodation links or unlinks an accommodation on the open draft.
func (s *CourseService) ToggleAccommodation(id int64) (collection.EditorState[forms.CourseDraft], error) {
	return s.editDraft(func(d *forms.CourseDraft) error {
		d.ToggleAccommodation(id)
		return nil
	})
}

func (s *CourseService) editDraft(change func(d *forms.CourseDraft) error) (collection.EditorState[forms.CourseDraft], error) {
	state := s.EditorState()
	if !state.Open() {
		return state, errNoOpenForm
	}
	d := state.Draft
	d.AccommodationIDs = append([]int64(nil), d.AccommodationIDs...)
	if err := change(&d); err != nil {
		return state, apperrors.NewBadRequestError(err.Error())
	}
	s.editor.SetDraft(d)
	return s.EditorState(), nil
}

// ToggleVisibility flips isVisible immediately and reverts it if the backend
// refuses.
func (s *CourseService) ToggleVisibility(ctx context.Context, id int64) (models.Course, error) {
	return s.patch(ctx, id,
		func(c models.Course) models.Course {
			c.IsVisible = !c.IsVisible
			return c
		},
		func(ctx context.Context, _ models.Course) (models.Course, error) {
			return s.repo.ToggleVisibility(ctx, id)
		},
		collection.Messages{Success: "Visibility updated", Failure: "Visibility update failed"})
}

func (s *CourseService) resetWizard() {
	s.mu.Lock()
	s.wizard.Reset()
	s.mu.Unlock()
}
