package repositories

import "github.com/yigit/courseadmin/internal/app/models"

// Repositories holds all the repository instances
type Repositories struct {
	Auth          *AuthRepository
	Course        *CourseRepository
	Instructor    *MediaRepository[models.Instructor]
	Accommodation *MediaRepository[models.Accommodation]
	Testimonial   *MediaRepository[models.Testimonial]
	Gallery       *MediaRepository[models.GalleryItem]
	Enrollment    *EnrollmentRepository
	Enquiry       *EnquiryRepository
}

// NewRepositories initializes all repositories over one backend client
func NewRepositories(client *Client, onlyVisibleCourses bool) *Repositories {
	return &Repositories{
		Auth:          NewAuthRepository(client),
		Course:        NewCourseRepository(client, onlyVisibleCourses),
		Instructor:    NewInstructorRepository(client),
		Accommodation: NewAccommodationRepository(client),
		Testimonial:   NewTestimonialRepository(client),
		Gallery:       NewGalleryRepository(client),
		Enrollment:    NewEnrollmentRepository(client),
		Enquiry:       NewEnquiryRepository(client),
	}
}
