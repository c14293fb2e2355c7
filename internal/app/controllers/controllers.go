package controllers

import (
	"time"

	"github.com/yigit/courseadmin/internal/app/forms"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

// Controllers holds every console controller
type Controllers struct {
	Auth           *AuthController
	Dashboard      *DashboardController
	Courses        *CourseController
	Instructors    *ResourceController[models.Instructor, forms.InstructorDraft]
	Accommodations *ResourceController[models.Accommodation, forms.AccommodationDraft]
	Testimonials   *ResourceController[models.Testimonial, forms.TestimonialDraft]
	Gallery        *ResourceController[models.GalleryItem, forms.GalleryDraft]
	Enrollments    *EnrollmentController
	Enquiries      *EnquiryController
}

// NewControllers builds the controllers over the services
func NewControllers(svc *services.Services, images filestorage.Source, loc *time.Location) *Controllers {
	return &Controllers{
		Auth:           NewAuthController(svc.Auth),
		Dashboard:      NewDashboardController(svc.Dashboard),
		Courses:        NewCourseController(svc.Courses, images, loc),
		Instructors:    NewResourceController[models.Instructor, forms.InstructorDraft](svc.Instructors, images, loc),
		Accommodations: NewResourceController[models.Accommodation, forms.AccommodationDraft](svc.Accommodations, images, loc),
		Testimonials:   NewResourceController[models.Testimonial, forms.TestimonialDraft](svc.Testimonials, images, loc),
		Gallery:        NewResourceController[models.GalleryItem, forms.GalleryDraft](svc.Gallery, images, loc, "category"),
		Enrollments:    NewEnrollmentController(svc.Enrollments, images, loc),
		Enquiries:      NewEnquiryController(svc.Enquiries, loc),
	}
}
