package dto

// DashboardStats summarizes every collection for the landing page
type DashboardStats struct {
	Courses            int `json:"courses"`
	VisibleCourses     int `json:"visibleCourses"`
	Instructors        int `json:"instructors"`
	Accommodations     int `json:"accommodations"`
	Enrollments        int `json:"enrollments"`
	PaidEnrollments    int `json:"paidEnrollments"`
	PendingEnrollments int `json:"pendingEnrollments"`
	TodayEnrollments   int `json:"todayEnrollments"`
	Enquiries          int `json:"enquiries"`
	OpenEnquiries      int `json:"openEnquiries"`
	Testimonials       int `json:"testimonials"`
	GalleryItems       int `json:"galleryItems"`
	// Revenue sums totalPrice over paid enrollments.
	Revenue float64 `json:"revenue"`
}
