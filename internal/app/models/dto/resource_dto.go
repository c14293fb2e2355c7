package dto

import "github.com/yigit/courseadmin/internal/app/models"

// Request bodies sent to the backend of record.

// CourseRequest is the JSON part of a course multipart submission
type CourseRequest struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Price            *float64 `json:"price"`
	Rating           *float64 `json:"rating"`
	Category         string   `json:"category"`
	Schedule         string   `json:"schedule"`
	Duration         string   `json:"duration"`
	Mode             string   `json:"mode"`
	IsVisible        bool     `json:"isVisible"`
	InstructorID     *int64   `json:"instructorId"`
	AccommodationIDs []int64  `json:"accommodationIds"`
}

// InstructorRequest is the JSON part of an instructor submission
type InstructorRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

// AccommodationRequest is the JSON part of an accommodation submission
type AccommodationRequest struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// TestimonialRequest is the JSON part of a testimonial submission
type TestimonialRequest struct {
	Name     string `json:"name"`
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating"`
}

// GalleryRequest is the JSON part of a gallery submission
type GalleryRequest struct {
	Category string `json:"category"`
}

// EnrollmentRequest is the JSON body for enrollments
type EnrollmentRequest struct {
	FullName        string             `json:"fullName"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Gender          string             `json:"gender"`
	Country         string             `json:"country"`
	CourseID        int64              `json:"courseId"`
	AccommodationID *int64             `json:"accommodationId"`
	PaymentMode     models.PaymentMode `json:"paymentMode"`
	// PaymentStatus is only sent when an admin changes it with the record.
	PaymentStatus models.PaymentStatus `json:"paymentStatus,omitempty"`
	TotalPrice    float64              `json:"totalPrice"`
}

// PaymentRequest updates an enrollment's payment status
type PaymentRequest struct {
	PaymentStatus models.PaymentStatus `json:"paymentStatus" binding:"required"`
}

// EnquiryStatusRequest updates an enquiry's status
type EnquiryStatusRequest struct {
	Status models.EnquiryStatus `json:"status" binding:"required"`
}
