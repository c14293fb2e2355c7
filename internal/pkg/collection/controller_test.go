package collection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/notify"
)

type item struct {
	ID      int64
	Name    string
	Visible bool
	At      time.Time
}

func (i item) Key() int64 { return i.ID }

type fakeSource struct {
	mu    sync.Mutex
	items []item
	err   error
	calls int
}

func (f *fakeSource) load(context.Context) ([]item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func seed(n int) []item {
	items := make([]item, n)
	for i := range items {
		items[i] = item{ID: int64(i + 1), Name: "item"}
	}
	return items
}

func newController(t *testing.T, src *fakeSource, opts Options) (*Controller[item], *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	opts.Notifier = rec
	opts.Logger = zerolog.Nop()
	if opts.PageSize == 0 {
		opts.PageSize = 5
	}
	c := New[item](src.load, opts)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	return c, rec
}

func ids(items []item) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestRefreshFailureKeepsState(t *testing.T) {
	src := &fakeSource{items: seed(3)}
	c, rec := newController(t, src, Options{Name: "item", LoadFailure: "Failed to fetch items"})

	src.err = errors.New("connection refused")
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	if diff := cmp.Diff([]int64{1, 2, 3}, ids(c.Items())); diff != "" {
		t.Fatalf("list changed after failed refresh (-want +got):\n%s", diff)
	}
	if got, _ := rec.Last(); got.Message != "Failed to fetch items" || got.Level != notify.LevelError {
		t.Fatalf("unexpected notification: %+v", got)
	}
}

func TestRefreshReplacesEntirely(t *testing.T) {
	src := &fakeSource{items: seed(3)}
	c, _ := newController(t, src, Options{})

	src.items = []item{{ID: 9}}
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int64{9}, ids(c.Items())); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestCreateAppendJumpsToLastPage(t *testing.T) {
	src := &fakeSource{items: seed(5)}
	c, rec := newController(t, src, Options{Create: CreateAppend})

	created, err := c.Create(context.Background(), func(context.Context) (item, error) {
		return item{ID: 6, Name: "Intro", Visible: true}, nil
	}, Messages{Success: "Course created", Failure: "Operation failed"})
	if err != nil {
		t.Fatal(err)
	}

	if created.ID != 6 || c.Len() != 6 {
		t.Fatalf("created %+v, len %d", created, c.Len())
	}
	if c.CurrentPage() != 2 {
		t.Fatalf("CurrentPage() = %d, want 2 (the new last page)", c.CurrentPage())
	}
	if src.calls != 1 {
		t.Fatalf("append policy should not refetch, calls = %d", src.calls)
	}
	if got, _ := rec.Last(); got.Message != "Course created" {
		t.Fatalf("unexpected notification %+v", got)
	}
}

func TestCreateRefreshPolicy(t *testing.T) {
	src := &fakeSource{items: seed(10)}
	c, _ := newController(t, src, Options{Create: CreateRefresh})

	_, err := c.Create(context.Background(), func(context.Context) (item, error) {
		src.items = append(src.items, item{ID: 11})
		return item{}, nil
	}, Messages{Success: "Added"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 11 || c.CurrentPage() != 3 {
		t.Fatalf("len %d page %d, want 11 and 3", c.Len(), c.CurrentPage())
	}
}

func TestCreateFailureNotifies(t *testing.T) {
	src := &fakeSource{items: seed(2)}
	c, rec := newController(t, src, Options{Create: CreateAppend})

	_, err := c.Create(context.Background(), func(context.Context) (item, error) {
		return item{}, &apperrors.BackendError{Status: 400, Message: "Title is required"}
	}, Messages{Failure: "Operation failed"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("Create() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatal("failed create must not change the list")
	}
	if got, _ := rec.Last(); got.Message != "Title is required" {
		t.Fatalf("backend message should win, got %+v", got)
	}
}

func TestUpdateReplacesInPlaceAndKeepsPage(t *testing.T) {
	src := &fakeSource{items: seed(12)}
	c, _ := newController(t, src, Options{})
	c.Goto(2)

	_, err := c.Update(context.Background(), 7, func(context.Context) (item, error) {
		return item{ID: 7, Name: "renamed"}, nil
	}, Messages{Success: "Updated"})
	if err != nil {
		t.Fatal(err)
	}

	got, ok := c.Find(7)
	if !ok || got.Name != "renamed" {
		t.Fatalf("Find(7) = %+v, %v", got, ok)
	}
	if diff := cmp.Diff(seqIDs(1, 12), ids(c.Items())); diff != "" {
		t.Fatalf("order changed (-want +got):\n%s", diff)
	}
	if c.CurrentPage() != 2 {
		t.Fatalf("CurrentPage() = %d, want 2", c.CurrentPage())
	}
}

func TestUpdateUnknownRecordRefreshes(t *testing.T) {
	src := &fakeSource{items: seed(3)}
	c, rec := newController(t, src, Options{})

	_, err := c.Update(context.Background(), 9, func(context.Context) (item, error) {
		src.mu.Lock()
		src.items = append(src.items, item{ID: 9, Name: "moved"})
		src.mu.Unlock()
		return item{ID: 9, Name: "moved"}, nil
	}, Messages{Success: "Updated"})
	if err != nil {
		t.Fatal(err)
	}
	if src.calls != 2 {
		t.Fatalf("loads = %d, want a refresh after the update", src.calls)
	}
	if _, ok := c.Find(9); !ok {
		t.Fatal("refreshed list should hold the updated record")
	}

	src.mu.Lock()
	src.err = errors.New("backend down")
	src.mu.Unlock()
	got, err := c.Update(context.Background(), 11, func(context.Context) (item, error) {
		return item{ID: 11, Name: "ghost"}, nil
	}, Messages{Success: "Updated"})
	if err != nil || got.ID != 11 {
		t.Fatalf("Update() with failing refresh = %+v, %v", got, err)
	}
	if last, _ := rec.Last(); last.Level != notify.LevelSuccess {
		t.Errorf("last notification = %+v", last)
	}
	if diff := cmp.Diff([]int64{1, 2, 3, 9}, ids(c.Items())); diff != "" {
		t.Errorf("list kept after failed refresh (-want +got):\n%s", diff)
	}
}

func seqIDs(from, to int64) []int64 {
	var out []int64
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func TestDeleteSoleItemOnLastPageDecrementsPage(t *testing.T) {
	src := &fakeSource{items: seed(6)}
	c, _ := newController(t, src, Options{})
	if c.Goto(2) != 2 {
		t.Fatal("expected to reach page 2")
	}

	err := c.Delete(context.Background(), 6, func(context.Context) error { return nil }, Messages{Success: "Deleted"})
	if err != nil {
		t.Fatal(err)
	}
	if c.CurrentPage() != 1 {
		t.Fatalf("CurrentPage() = %d, want 1", c.CurrentPage())
	}
}

func TestOptimisticDeleteRestoresOnFailure(t *testing.T) {
	src := &fakeSource{items: seed(6)}
	c, rec := newController(t, src, Options{Delete: DeleteOptimistic})
	c.Goto(2)

	var sawRemoved bool
	err := c.Delete(context.Background(), 6, func(context.Context) error {
		_, present := c.Find(6)
		sawRemoved = !present
		return errors.New("boom")
	}, Messages{Success: "Deleted", Failure: "Delete failed"})
	if err == nil {
		t.Fatal("expected delete error")
	}

	if !sawRemoved {
		t.Fatal("optimistic delete should remove before the backend answers")
	}
	if diff := cmp.Diff(seqIDs(1, 6), ids(c.Items())); diff != "" {
		t.Fatalf("record not restored in place (-want +got):\n%s", diff)
	}
	if c.CurrentPage() != 2 {
		t.Fatalf("CurrentPage() = %d, want 2 after rollback", c.CurrentPage())
	}
	if got, _ := rec.Last(); got.Message != "Delete failed" {
		t.Fatalf("unexpected notification %+v", got)
	}
}

func TestPessimisticDeleteWaitsForBackend(t *testing.T) {
	src := &fakeSource{items: seed(3)}
	c, _ := newController(t, src, Options{Delete: DeletePessimistic})

	err := c.Delete(context.Background(), 2, func(context.Context) error {
		if _, present := c.Find(2); !present {
			t.Error("pessimistic delete removed the record too early")
		}
		return nil
	}, Messages{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int64{1, 3}, ids(c.Items())); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestPatchRollbackOnFailure(t *testing.T) {
	src := &fakeSource{items: []item{{ID: 1, Visible: true}, {ID: 2, Visible: false}}}
	c, rec := newController(t, src, Options{})

	toggle := func(it item) item { it.Visible = !it.Visible; return it }

	var duringCall bool
	_, err := c.Patch(context.Background(), 1, toggle, func(_ context.Context, patched item) (item, error) {
		current, _ := c.Find(1)
		duringCall = current.Visible
		return item{}, errors.New("timeout")
	}, Messages{Success: "Visibility updated", Failure: "Visibility update failed"})
	if err == nil {
		t.Fatal("expected patch error")
	}

	if duringCall {
		t.Fatal("local value should be toggled while the call is outstanding")
	}
	got, _ := c.Find(1)
	if !got.Visible {
		t.Fatal("visibility should be rolled back to true")
	}
	if last, _ := rec.Last(); last.Message != "Visibility update failed" || last.Level != notify.LevelError {
		t.Fatalf("unexpected notification %+v", last)
	}
}

func TestPatchUsesCanonicalRecord(t *testing.T) {
	src := &fakeSource{items: []item{{ID: 1, Name: "old"}}}
	c, _ := newController(t, src, Options{})

	out, err := c.Patch(context.Background(), 1, func(it item) item { it.Visible = true; return it },
		func(_ context.Context, patched item) (item, error) {
			patched.Name = "server"
			return patched, nil
		}, Messages{})
	if err != nil {
		t.Fatal(err)
	}
	got, _ := c.Find(1)
	if got != out || got.Name != "server" || !got.Visible {
		t.Fatalf("Find(1) = %+v, returned %+v", got, out)
	}
}

func TestPatchUnknownRecord(t *testing.T) {
	src := &fakeSource{items: seed(1)}
	c, _ := newController(t, src, Options{})
	_, err := c.Patch(context.Background(), 42, func(it item) item { return it },
		func(context.Context, item) (item, error) {
			t.Fatal("backend must not be called")
			return item{}, nil
		}, Messages{Failure: "Operation failed"})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("Patch() error = %v", err)
	}
}

func TestOverlappingMutationRejected(t *testing.T) {
	src := &fakeSource{items: seed(2)}
	c, rec := newController(t, src, Options{})

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := c.Patch(context.Background(), 1, func(it item) item { it.Visible = true; return it },
			func(_ context.Context, patched item) (item, error) {
				close(started)
				<-release
				return patched, nil
			}, Messages{})
		done <- err
	}()

	<-started
	if !c.InFlight(1) {
		t.Fatal("record 1 should be marked in flight")
	}

	calls := 0
	err := c.Delete(context.Background(), 1, func(context.Context) error { calls++; return nil }, Messages{})
	if !errors.Is(err, apperrors.ErrOperationInFlight) {
		t.Fatalf("second mutation error = %v, want ErrOperationInFlight", err)
	}
	if calls != 0 {
		t.Fatal("rejected mutation must not reach the backend")
	}
	if last, _ := rec.Last(); last.Message != apperrors.MsgInFlight {
		t.Fatalf("unexpected notification %+v", last)
	}

	if err := c.Delete(context.Background(), 2, func(context.Context) error { return nil }, Messages{}); err != nil {
		t.Fatalf("other records must stay mutable: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if c.InFlight(1) {
		t.Fatal("marker should be cleared after completion")
	}
}

func TestViewFiltersThenPaginates(t *testing.T) {
	items := []item{
		{ID: 1, Name: "ABCdef"}, {ID: 2, Name: "zzz"}, {ID: 3, Name: "xabc"},
		{ID: 4, Name: "abc"}, {ID: 5, Name: "nope"}, {ID: 6, Name: "ABC"},
		{ID: 7, Name: "aBc"},
	}
	src := &fakeSource{items: items}
	c, _ := newController(t, src, Options{PageSize: 2})

	match := func(it item) bool { return MatchText("abc", it.Name) }

	page := c.View(3, nil, match)
	if diff := cmp.Diff([]int64{7}, ids(page.Items)); diff != "" {
		t.Fatalf("page 3 (-want +got):\n%s", diff)
	}
	if page.Filtered != 5 || page.Total != 7 || page.TotalPages != 3 {
		t.Fatalf("unexpected page meta %+v", page)
	}

	page = c.View(4, nil, match)
	if page.Page != 3 {
		t.Fatalf("page past the filtered end should clamp, got %d", page.Page)
	}
}
