package forms

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

func TestWizard(t *testing.T) {
	w := NewWizard(CourseSteps...)
	if w.Step() != 1 || w.Title() != "Course details" || w.Final() {
		t.Fatalf("unexpected start: step %d %q", w.Step(), w.Title())
	}
	w.Back()
	if w.Step() != 1 {
		t.Fatal("Back() on first step should stay")
	}
	w.Next()
	w.Next()
	w.Next()
	if w.Step() != 3 || !w.Final() || w.Title() != "Accommodations" {
		t.Fatalf("Next() should stop at the last step, got %d", w.Step())
	}
	w.Reset()
	if w.Step() != 1 {
		t.Fatal("Reset() should return to step 1")
	}
}

func TestCourseDraft(t *testing.T) {
	d := BlankCourse()
	if !d.IsVisible {
		t.Fatal("new courses default to visible")
	}
	if err := d.Validate(); err == nil || err.Error() != "Title is required" {
		t.Fatalf("Validate() = %v", err)
	}

	price := 100.0
	instructor := int64(2)
	d.Title = " Intro "
	d.Price = &price
	d.InstructorID = &instructor
	d.ToggleAccommodation(4)
	d.ToggleAccommodation(5)
	d.ToggleAccommodation(4)
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := dto.CourseRequest{Title: "Intro", Price: &price, IsVisible: true, InstructorID: &instructor, AccommodationIDs: []int64{5}}
	if diff := cmp.Diff(want, d.Request()); diff != "" {
		t.Errorf("Request() mismatch (-want +got):\n%s", diff)
	}

	neg := -1.0
	d.Price = &neg
	if err := d.Validate(); err == nil || err.Error() != "Price cannot be negative" {
		t.Errorf("Validate() = %v", err)
	}
}

func TestCourseFromRecordAndFiles(t *testing.T) {
	c := models.Course{
		ID: 1, Title: "Intro", IsVisible: false,
		ImageURL: "card.png", OptionImage2: "opt2.png",
		Instructor:     &models.Instructor{ID: 7},
		Accommodations: []models.Accommodation{{ID: 3}},
	}
	d := CourseFromRecord(c)
	if d.IsVisible || d.InstructorID == nil || *d.InstructorID != 7 {
		t.Fatalf("unexpected draft: %+v", d)
	}
	if diff := cmp.Diff([]int64{3}, d.AccommodationIDs); diff != "" {
		t.Errorf("AccommodationIDs mismatch:\n%s", diff)
	}

	up := &filestorage.Upload{Filename: "new.png", ContentType: "image/png"}
	if err := d.RemoveImage(SlotOption2); err != nil {
		t.Fatal(err)
	}
	if err := d.SetImage(SlotCard, up); err != nil {
		t.Fatal(err)
	}
	if err := d.SetImage(9, up); err == nil {
		t.Error("unknown slot should fail")
	}

	files := d.Files()
	if files.Image != up || files.RemoveImage {
		t.Errorf("card slot: %+v", files)
	}
	if !files.RemoveOptions[1] || files.RemoveOptions[0] || d.ImageURLs[SlotOption2] != "" {
		t.Errorf("option slots: %+v", files.RemoveOptions)
	}
}

func TestMediaDrafts(t *testing.T) {
	tests := []struct {
		name  string
		draft interface{ Validate() error }
		want  string
	}{
		{"instructor needs role", InstructorDraft{Name: "Ada", Description: "x"}, "Role is required"},
		{"accommodation needs type", BlankAccommodation(), "Type is required"},
		{"accommodation price", AccommodationDraft{Type: "Hostel", Price: float(-5)}, "Price cannot be negative"},
		{"accommodation missing price", AccommodationDraft{Type: "Hostel"}, "Price is required"},
		{"testimonial needs feedback", TestimonialDraft{Name: "Sam", Rating: 3}, "Feedback is required"},
		{"gallery needs category", GalleryDraft{ImageURL: "a.png"}, "Category is required"},
		{"gallery needs image", GalleryDraft{Category: "Campus"}, "Image is required"},
		{"valid gallery edit", GalleryDraft{Category: "Campus", ImageURL: "a.png"}, ""},
		{"valid accommodation", AccommodationDraft{Type: "Hostel", Price: float(0)}, ""},
		{"valid testimonial", TestimonialDraft{Name: "Sam", Feedback: "Great", Rating: 5}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, apperrors.ErrValidationFailed) || err.Error() != tt.want {
				t.Fatalf("Validate() = %v, want %q", err, tt.want)
			}
		})
	}

	if err := (TestimonialDraft{Name: "Sam", Feedback: "ok", Rating: 6}).Validate(); err == nil {
		t.Error("rating above 5 should fail")
	}
	if BlankTestimonial().Rating != 1 {
		t.Error("blank testimonial rating should be 1")
	}
}

func TestEnrollmentQuote(t *testing.T) {
	price := 500.0
	courses := []models.Course{{ID: 1, Title: "Yoga", Price: &price, Duration: "2 weeks"}}
	accommodations := []models.Accommodation{{ID: 2, Type: "Hostel", Price: 50}}
	acc := int64(2)

	d := EnrollmentDraft{
		FullName: "Jane Doe", Email: "jane@example.test", Gender: "F", Country: "NP",
		CourseID: 1, AccommodationID: &acc, PaymentMode: models.PayLater,
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	q, err := d.Quote(courses, accommodations)
	if err != nil {
		t.Fatal(err)
	}
	if q.DurationDays != 14 || q.AccommodationCost != 700 || q.TotalPrice != 1200 {
		t.Fatalf("Quote() = %+v", q)
	}
	if req := d.Request(q); req.TotalPrice != 1200 || req.CourseID != 1 {
		t.Fatalf("Request() = %+v", req)
	}

	missing := int64(99)
	d.AccommodationID = &missing
	if _, err := d.Quote(courses, accommodations); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("unknown accommodation: %v", err)
	}
}

func TestEnrollmentValidationMessages(t *testing.T) {
	d := EnrollmentDraft{FullName: "Jane", Email: "j@x.test", Gender: "F", Country: "NP", PaymentMode: models.PayNow}
	if err := d.Validate(); err == nil || err.Error() != "Please select a course" {
		t.Fatalf("Validate() = %v", err)
	}
	d.CourseID = 1
	d.PaymentMode = ""
	if err := d.Validate(); err == nil || err.Error() != "Please select payment mode" {
		t.Fatalf("Validate() = %v", err)
	}
	d.PaymentMode = models.PayNow
	d.FullName = ""
	if err := d.Validate(); err == nil || err.Error() != "Full name is required" {
		t.Fatalf("Validate() = %v", err)
	}
}
