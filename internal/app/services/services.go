package services

import (
	"time"

	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/app/session"
)

// Settings size the list views
type Settings struct {
	PageSize           int
	EnrollmentPageSize int
	Location           *time.Location
}

// Services holds every service of the console
type Services struct {
	Auth           *AuthService
	Courses        *CourseService
	Instructors    *InstructorService
	Accommodations *AccommodationService
	Testimonials   *TestimonialService
	Gallery        *GalleryService
	Enrollments    *EnrollmentService
	Enquiries      *EnquiryService
	Dashboard      *DashboardService
}

// NewServices wires every service over the repositories and session
func NewServices(repos *repositories.Repositories, sess *session.Session, settings Settings, deps Deps) *Services {
	if settings.Location == nil {
		settings.Location = time.Local
	}

	courses := NewCourseService(repos.Course, settings.PageSize, deps)
	accommodations := NewAccommodationService(repos.Accommodation, settings.PageSize, deps)

	return &Services{
		Auth:           NewAuthService(repos.Auth, sess, deps),
		Courses:        courses,
		Instructors:    NewInstructorService(repos.Instructor, courses.Listing, settings.PageSize, deps),
		Accommodations: accommodations,
		Testimonials:   NewTestimonialService(repos.Testimonial, settings.PageSize, deps),
		Gallery:        NewGalleryService(repos.Gallery, settings.PageSize, deps),
		Enrollments:    NewEnrollmentService(repos.Enrollment, courses.Listing, accommodations.Listing, settings.EnrollmentPageSize, deps),
		Enquiries:      NewEnquiryService(repos.Enquiry, settings.PageSize, deps),
		Dashboard:      NewDashboardService(repos, settings.Location, deps),
	}
}
