package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/collection"
	"github.com/yigit/courseadmin/internal/pkg/notify"
)

// Texts are the notifications shown for one entity.
type Texts struct {
	Created      string
	Updated      string
	Deleted      string
	SaveFailed   string
	DeleteFailed string
	LoadFailed   string
}

// ListingConfig binds an entity's backend calls and view criteria.
type ListingConfig[T models.Record] struct {
	Name     string
	PageSize int
	Create   collection.CreatePolicy
	Delete   collection.DeletePolicy

	Load   collection.LoadFunc[T]
	Get    func(ctx context.Context, id int64) (T, error)
	Remove func(ctx context.Context, id int64) error
	// Guard may refuse a delete before the backend is called.
	Guard func(ctx context.Context, id int64) error

	// Criteria turns a query into filter predicates; Order sorts the filtered list.
	Criteria func(q collection.Query) []collection.Predicate[T]
	Order    func([]T) []T

	Texts Texts
}

// Deps are shared by every service.
type Deps struct {
	Notifier notify.Notifier
	Logger   zerolog.Logger
}

// Listing serves the read side and deletes of one entity.
type Listing[T models.Record] struct {
	items    *collection.Controller[T]
	cfg      ListingConfig[T]
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewListing creates a listing over its own collection controller.
func NewListing[T models.Record](cfg ListingConfig[T], deps Deps) *Listing[T] {
	if deps.Notifier == nil {
		deps.Notifier = notify.Discard
	}
	if cfg.Texts.SaveFailed == "" {
		cfg.Texts.SaveFailed = "Operation failed"
	}
	if cfg.Texts.DeleteFailed == "" {
		cfg.Texts.DeleteFailed = "Delete failed"
	}

	items := collection.New(cfg.Load, collection.Options{
		Name:        cfg.Name,
		PageSize:    cfg.PageSize,
		Create:      cfg.Create,
		Delete:      cfg.Delete,
		LoadFailure: cfg.Texts.LoadFailed,
		Notifier:    deps.Notifier,
		Logger:      deps.Logger,
	})

	return &Listing[T]{
		items:    items,
		cfg:      cfg,
		notifier: deps.Notifier,
		logger:   deps.Logger.With().Str("service", cfg.Name).Logger(),
	}
}

// Name labels the entity.
func (l *Listing[T]) Name() string { return l.cfg.Name }

// Collection exposes the underlying controller.
func (l *Listing[T]) Collection() *collection.Controller[T] { return l.items }

// Refresh reloads the list from the backend.
func (l *Listing[T]) Refresh(ctx context.Context) error {
	return l.items.Refresh(ctx)
}

// Items returns the full list, loading it on first use.
func (l *Listing[T]) Items(ctx context.Context) ([]T, error) {
	if err := l.items.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return l.items.Items(), nil
}

// List renders one page of the filtered list. page 0 keeps the current page.
func (l *Listing[T]) List(ctx context.Context, page int, q collection.Query) (collection.Page[T], error) {
	if err := l.items.EnsureLoaded(ctx); err != nil {
		return collection.Page[T]{}, err
	}

	var preds []collection.Predicate[T]
	if l.cfg.Criteria != nil {
		preds = l.cfg.Criteria(q)
	}
	return l.items.View(page, l.cfg.Order, preds...), nil
}

// Show returns one record, from the local list when present.
func (l *Listing[T]) Show(ctx context.Context, id int64) (T, error) {
	if record, ok := l.items.Find(id); ok {
		return record, nil
	}
	if l.cfg.Get == nil {
		var zero T
		return zero, apperrors.NewResourceNotFoundError(l.cfg.Name + " not found")
	}
	return l.cfg.Get(ctx, id)
}

// Delete removes id after the guard allows it.
func (l *Listing[T]) Delete(ctx context.Context, id int64) error {
	if l.cfg.Guard != nil {
		if err := l.cfg.Guard(ctx, id); err != nil {
			l.logger.Info().Int64("id", id).Err(err).Msg("Delete refused")
			notify.Error(l.notifier, apperrors.UserMessage(err, l.cfg.Texts.DeleteFailed))
			return err
		}
	}

	remove := func(ctx context.Context) error { return l.cfg.Remove(ctx, id) }
	return l.items.Delete(ctx, id, remove, collection.Messages{
		Success: l.cfg.Texts.Deleted,
		Failure: l.cfg.Texts.DeleteFailed,
	})
}

// patch runs an optimistic change on id through the collection.
func (l *Listing[T]) patch(ctx context.Context, id int64, apply func(T) T, call func(context.Context, T) (T, error), msgs collection.Messages) (T, error) {
	if err := l.items.EnsureLoaded(ctx); err != nil {
		var zero T
		return zero, err
	}
	return l.items.Patch(ctx, id, apply, call, msgs)
}
