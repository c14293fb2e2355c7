package services

import (
	"context"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/collection"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
	"github.com/yigit/courseadmin/internal/pkg/notify"
)

// Draft is the editable form state of an entity.
type Draft interface {
	Validate() error
}

// FormConfig binds an entity's form to its backend calls.
type FormConfig[T models.Record, D Draft] struct {
	Blank  func() D
	Seed   func(T) D
	Create func(ctx context.Context, d D) (T, error)
	Update func(ctx context.Context, id int64, d D) (T, error)

	// Attach stages an image on the draft. Nil means the form has no image.
	Attach func(d D, up *filestorage.Upload) D
	// Carry copies state that is not part of the draft's JSON, such as staged
	// uploads, from the previous draft onto a replacement.
	Carry func(prev, next D) D
}

// Resource adds the editor and form submission to a Listing.
type Resource[T models.Record, D Draft] struct {
	*Listing[T]
	editor collection.Editor[D]
	form   FormConfig[T, D]
}

// NewResource creates a resource service.
func NewResource[T models.Record, D Draft](cfg ListingConfig[T], form FormConfig[T, D], deps Deps) *Resource[T, D] {
	return &Resource[T, D]{
		Listing: NewListing(cfg, deps),
		form:    form,
	}
}

// EditorState returns the editor snapshot.
func (r *Resource[T, D]) EditorState() collection.EditorState[D] {
	return r.editor.State()
}

// OpenCreate shows a blank create form, or closes the editor when it is open.
func (r *Resource[T, D]) OpenCreate() collection.EditorState[D] {
	return r.editor.ToggleCreate(r.blank())
}

// Edit opens the form for id seeded from the stored record.
func (r *Resource[T, D]) Edit(ctx context.Context, id int64) (collection.EditorState[D], error) {
	record, err := r.Show(ctx, id)
	if err != nil {
		return r.editor.State(), err
	}
	return r.editor.Edit(id, r.form.Seed(record)), nil
}

// CloseEditor closes the editor and drops the draft.
func (r *Resource[T, D]) CloseEditor() collection.EditorState[D] {
	return r.editor.Close()
}

// SetDraft replaces the draft of the open editor.
func (r *Resource[T, D]) SetDraft(d D) (collection.EditorState[D], error) {
	if r.form.Carry != nil {
		d = r.form.Carry(r.editor.State().Draft, d)
	}
	if !r.editor.SetDraft(d) {
		return r.editor.State(), errNoOpenForm
	}
	return r.editor.State(), nil
}

// AttachImage stages an image on the open draft.
func (r *Resource[T, D]) AttachImage(up *filestorage.Upload) (collection.EditorState[D], error) {
	if r.form.Attach == nil {
		return r.editor.State(), apperrors.NewBadRequestError("This form has no image")
	}
	state := r.editor.State()
	if !state.Open() {
		return state, errNoOpenForm
	}
	r.editor.SetDraft(r.form.Attach(state.Draft, up))
	return r.editor.State(), nil
}

// Submit creates or updates from the open draft. On success the editor closes;
// on failure it stays open with the draft intact.
func (r *Resource[T, D]) Submit(ctx context.Context) (T, error) {
	state := r.editor.State()

	var (
		record T
		err    error
	)
	switch state.Mode {
	case collection.EditorCreate:
		record, err = r.Create(ctx, state.Draft)
	case collection.EditorEdit:
		record, err = r.Update(ctx, state.RecordID, state.Draft)
	default:
		return record, errNoOpenForm
	}
	if err != nil {
		return record, err
	}

	r.editor.Close()
	return record, nil
}

// Create validates d and creates the record.
func (r *Resource[T, D]) Create(ctx context.Context, d D) (T, error) {
	if err := r.validate(d); err != nil {
		var zero T
		return zero, err
	}
	return r.items.Create(ctx, func(ctx context.Context) (T, error) {
		return r.form.Create(ctx, d)
	}, collection.Messages{Success: r.cfg.Texts.Created, Failure: r.cfg.Texts.SaveFailed})
}

// Update validates d and replaces record id.
func (r *Resource[T, D]) Update(ctx context.Context, id int64, d D) (T, error) {
	if err := r.validate(d); err != nil {
		var zero T
		return zero, err
	}
	return r.items.Update(ctx, id, func(ctx context.Context) (T, error) {
		return r.form.Update(ctx, id, d)
	}, collection.Messages{Success: r.cfg.Texts.Updated, Failure: r.cfg.Texts.SaveFailed})
}

// Delete removes id and closes the editor if it was editing that record.
func (r *Resource[T, D]) Delete(ctx context.Context, id int64) error {
	if err := r.Listing.Delete(ctx, id); err != nil {
		return err
	}
	if state := r.editor.State(); state.Mode == collection.EditorEdit && state.RecordID == id {
		r.editor.Close()
	}
	return nil
}

func (r *Resource[T, D]) validate(d D) error {
	if err := d.Validate(); err != nil {
		r.logger.Debug().Err(err).Msg("Draft rejected")
		notify.Error(r.notifier, apperrors.UserMessage(err, r.cfg.Texts.SaveFailed))
		return err
	}
	return nil
}

func (r *Resource[T, D]) blank() D {
	if r.form.Blank != nil {
		return r.form.Blank()
	}
	var zero D
	return zero
}

var errNoOpenForm = apperrors.NewBadRequestError("No form is open")
