package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		items, size, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{11, 5, 3},
		{12, 6, 2},
		{13, 6, 3},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.items, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.items, tt.size, got, tt.want)
		}
	}
}

func TestPagesReconstructList(t *testing.T) {
	for n := 0; n <= 23; n++ {
		for size := 1; size <= 7; size++ {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}

			var joined []int
			for page := 1; page <= TotalPages(n, size); page++ {
				slice := Paginate(items, page, size)
				if len(slice) > size {
					t.Fatalf("n=%d size=%d page=%d: slice too long", n, size, page)
				}
				joined = append(joined, slice...)
			}
			if len(joined) == 0 && n == 0 {
				continue
			}
			if diff := cmp.Diff(items, joined); diff != "" {
				t.Fatalf("n=%d size=%d: pages do not reconstruct list (-want +got):\n%s", n, size, diff)
			}
		}
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	if got := Paginate(items, 9, 2); len(got) != 0 {
		t.Fatalf("page past the end should be empty, got %v", got)
	}
	if got := Paginate(items, 0, 2); !cmp.Equal(got, []string{"a", "b"}) {
		t.Fatalf("page 0 should behave as page 1, got %v", got)
	}
}

func TestClampPage(t *testing.T) {
	if ClampPage(4, 3) != 3 || ClampPage(0, 3) != 1 || ClampPage(2, 0) != 1 || ClampPage(2, 3) != 2 {
		t.Fatal("ClampPage returned unexpected value")
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(20, 7, 9, 5)
	if info.CurrentPage != 2 || info.TotalPages != 2 || info.TotalItems != 20 || info.FilteredItems != 7 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		page  int
	}{
		{"", 0},
		{"?page=3", 3},
		{"?page=x", 1},
		{"?page=-2", 1},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/courses"+tt.query, nil)
		if got := ParsePage(c); got != tt.page {
			t.Errorf("%q: got %d, want %d", tt.query, got, tt.page)
		}
	}
}
