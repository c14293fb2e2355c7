package collection

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/helpers"
	"github.com/yigit/courseadmin/internal/pkg/notify"
)

// CreatePolicy decides how a created record reaches the local list.
type CreatePolicy int

const (
	// CreateRefresh reloads the list from the backend.
	CreateRefresh CreatePolicy = iota
	// CreateAppend appends the record returned by the backend.
	CreateAppend
)

// DeletePolicy decides when a deleted record leaves the local list.
type DeletePolicy int

const (
	// DeleteOptimistic removes the record before the backend answers and
	// restores it if the call fails.
	DeleteOptimistic DeletePolicy = iota
	// DeletePessimistic removes the record once the backend confirms.
	DeletePessimistic
)

// Messages are the notifications for one mutation outcome.
type Messages struct {
	Success string
	Failure string
}

// Options configure a Controller.
type Options struct {
	// Name labels log lines, e.g. "course".
	Name     string
	PageSize int
	Create   CreatePolicy
	Delete   DeletePolicy
	// LoadFailure is shown when Refresh fails.
	LoadFailure string
	Notifier    notify.Notifier
	Logger      zerolog.Logger
}

// LoadFunc fetches the authoritative list.
type LoadFunc[T models.Record] func(ctx context.Context) ([]T, error)

// Page is one rendered page of a filtered list.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	PageSize   int
	Total      int
	Filtered   int
}

// Controller holds one entity's list, page and in-flight mutations. It is safe
// for concurrent use; backend calls never run under its lock.
type Controller[T models.Record] struct {
	mu       sync.Mutex
	items    []T
	loaded   bool
	pager    Pager
	inflight map[int64]struct{}

	load     LoadFunc[T]
	opts     Options
	notifier notify.Notifier
	logger   zerolog.Logger
}

// New creates a Controller reading from load.
func New[T models.Record](load LoadFunc[T], opts Options) *Controller[T] {
	if opts.Notifier == nil {
		opts.Notifier = notify.Discard
	}
	if opts.LoadFailure == "" {
		opts.LoadFailure = "Failed to load data"
	}
	return &Controller[T]{
		pager:    NewPager(opts.PageSize),
		inflight: make(map[int64]struct{}),
		load:     load,
		opts:     opts,
		notifier: opts.Notifier,
		logger:   opts.Logger.With().Str("collection", opts.Name).Logger(),
	}
}

// Refresh replaces the local list with the backend's. On failure the previous
// list is kept and a notification is emitted.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	items, err := c.load(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Refresh failed")
		notify.Error(c.notifier, apperrors.UserMessage(err, c.opts.LoadFailure))
		return err
	}
	if items == nil {
		items = []T{}
	}

	c.mu.Lock()
	first := !c.loaded
	c.items = items
	c.loaded = true
	if first {
		c.pager.Reset()
	} else {
		c.pager.AfterShrink(len(items))
	}
	c.mu.Unlock()

	c.logger.Debug().Int("count", len(items)).Msg("Collection refreshed")
	return nil
}

// EnsureLoaded refreshes once if the list was never loaded.
func (c *Controller[T]) EnsureLoaded(ctx context.Context) error {
	if c.Loaded() {
		return nil
	}
	return c.Refresh(ctx)
}

// Loaded reports whether a refresh has succeeded.
func (c *Controller[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Items returns a copy of the list.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the list size.
func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Find returns the record with the given id.
func (c *Controller[T]) Find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// CurrentPage returns the current page.
func (c *Controller[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Current()
}

// PageSize returns the page size.
func (c *Controller[T]) PageSize() int {
	return c.pager.Size()
}

// Goto moves to page within the full list and returns the resulting page.
func (c *Controller[T]) Goto(page int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Goto(page, len(c.items))
}

// View filters, orders and paginates the list. page 0 keeps the current page;
// the rendered page is clamped into the filtered list.
func (c *Controller[T]) View(page int, order func([]T) []T, preds ...Predicate[T]) Page[T] {
	c.mu.Lock()
	if page > 0 {
		c.pager.Goto(page, len(c.items))
	}
	current := c.pager.Current()
	size := c.pager.Size()
	items := make([]T, len(c.items))
	copy(items, c.items)
	c.mu.Unlock()

	filtered := Filter(items, preds...)
	if order != nil {
		filtered = order(filtered)
	}

	info := helpers.NewPaginationInfo(len(items), len(filtered), current, size)
	return Page[T]{
		Items:      helpers.Paginate(filtered, info.CurrentPage, size),
		Page:       info.CurrentPage,
		TotalPages: info.TotalPages,
		PageSize:   size,
		Total:      len(items),
		Filtered:   len(filtered),
	}
}

// Create calls the backend and brings the new record into the list according to
// the create policy, then jumps to the last page.
func (c *Controller[T]) Create(ctx context.Context, call func(ctx context.Context) (T, error), msgs Messages) (T, error) {
	created, err := call(ctx)
	if err != nil {
		return created, c.fail("Create failed", 0, err, msgs)
	}

	if c.opts.Create == CreateAppend && created.Key() != 0 {
		c.mu.Lock()
		c.items = append(c.items, created)
		c.pager.AfterAppend(len(c.items))
		c.mu.Unlock()
	} else if err := c.Refresh(ctx); err == nil {
		c.mu.Lock()
		c.pager.AfterAppend(len(c.items))
		c.mu.Unlock()
	}

	notify.Success(c.notifier, msgs.Success)
	return created, nil
}

// Update calls the backend for id and replaces the record in place with the
// canonical one. The page does not change.
func (c *Controller[T]) Update(ctx context.Context, id int64, call func(ctx context.Context) (T, error), msgs Messages) (T, error) {
	var zero T
	if err := c.begin(id); err != nil {
		return zero, err
	}
	defer c.end(id)

	updated, err := call(ctx)
	if err != nil {
		return zero, c.fail("Update failed", id, err, msgs)
	}

	if !c.replace(updated) {
		c.logger.Debug().Int64("id", id).Msg("Updated record not in list, refreshing")
		if err := c.Refresh(ctx); err != nil {
			c.logger.Warn().Int64("id", id).Err(err).Msg("Refresh after update failed")
		}
	}

	notify.Success(c.notifier, msgs.Success)
	return updated, nil
}

// Delete removes id from the backend and the list, then clamps the page.
func (c *Controller[T]) Delete(ctx context.Context, id int64, call func(ctx context.Context) error, msgs Messages) error {
	if err := c.begin(id); err != nil {
		return err
	}
	defer c.end(id)

	if c.opts.Delete == DeletePessimistic {
		if err := call(ctx); err != nil {
			return c.fail("Delete failed", id, err, msgs)
		}
		c.remove(id)
		notify.Success(c.notifier, msgs.Success)
		return nil
	}

	page := c.CurrentPage()
	removed, index, ok := c.remove(id)
	if err := call(ctx); err != nil {
		if ok {
			c.restore(removed, index, page)
		}
		return c.fail("Delete failed", id, err, msgs)
	}

	notify.Success(c.notifier, msgs.Success)
	return nil
}

// Patch applies a local change to id immediately, then calls the backend with the
// patched record. On success the canonical record replaces it; on failure the
// previous value is restored and a notification is emitted.
func (c *Controller[T]) Patch(ctx context.Context, id int64, apply func(T) T, call func(ctx context.Context, patched T) (T, error), msgs Messages) (T, error) {
	var zero T
	if err := c.begin(id); err != nil {
		return zero, err
	}
	defer c.end(id)

	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		err := apperrors.NewResourceNotFoundError("Record not found")
		notify.Error(c.notifier, apperrors.UserMessage(err, msgs.Failure))
		return zero, err
	}
	previous := c.items[i]
	patched := apply(previous)
	c.items[i] = patched
	c.mu.Unlock()

	canonical, err := call(ctx, patched)
	if err != nil {
		c.replace(previous)
		return previous, c.fail("Patch failed, local change reverted", id, err, msgs)
	}

	if canonical.Key() == 0 {
		canonical = patched
	}
	c.replace(canonical)

	notify.Success(c.notifier, msgs.Success)
	return canonical, nil
}

// InFlight reports whether id has a mutation outstanding.
func (c *Controller[T]) InFlight(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, busy := c.inflight[id]
	return busy
}

func (c *Controller[T]) begin(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[id]; busy {
		err := apperrors.NewInFlightError(id)
		c.logger.Warn().Int64("id", id).Msg("Rejected overlapping mutation")
		notify.Error(c.notifier, err.Error())
		return err
	}
	c.inflight[id] = struct{}{}
	return nil
}

func (c *Controller[T]) end(id int64) {
	c.mu.Lock()
	delete(c.inflight, id)
	c.mu.Unlock()
}

func (c *Controller[T]) fail(msg string, id int64, err error, msgs Messages) error {
	event := c.logger.Warn().Err(err)
	if id != 0 {
		event = event.Int64("id", id)
	}
	event.Msg(msg)
	notify.Error(c.notifier, apperrors.UserMessage(err, msgs.Failure))
	return err
}

func (c *Controller[T]) indexOf(id int64) int {
	for i, item := range c.items {
		if item.Key() == id {
			return i
		}
	}
	return -1
}

func (c *Controller[T]) replace(record T) bool {
	if record.Key() == 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(record.Key()); i >= 0 {
		c.items[i] = record
		return true
	}
	return false
}

func (c *Controller[T]) remove(id int64) (T, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, -1, false
	}
	removed := c.items[i]
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.pager.AfterShrink(len(c.items))
	return removed, i, true
}

func (c *Controller[T]) restore(record T, index, page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(record.Key()) >= 0 {
		return
	}
	if index > len(c.items) {
		index = len(c.items)
	}
	c.items = append(c.items[:index:index], append([]T{record}, c.items[index:]...)...)
	c.pager.Goto(page, len(c.items))
}
