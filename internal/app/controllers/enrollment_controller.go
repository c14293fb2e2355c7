package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/forms"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/middleware"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

// EnrollmentController adds pricing and payment to the enrollment resource.
type EnrollmentController struct {
	*ResourceController[models.Enrollment, forms.EnrollmentDraft]
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new enrollment controller
func NewEnrollmentController(enrollmentService *services.EnrollmentService, images filestorage.Source, loc *time.Location) *EnrollmentController {
	return &EnrollmentController{
		ResourceController: NewResourceController[models.Enrollment, forms.EnrollmentDraft](
			enrollmentService, images, loc, services.EnrollmentFilters...),
		enrollmentService: enrollmentService,
	}
}

// Quote prices the posted draft without saving it.
func (ec *EnrollmentController) Quote(ctx *gin.Context) {
	var draft forms.EnrollmentDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request format"))
		return
	}
	q, err := ec.enrollmentService.Quote(ctx.Request.Context(), draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, dto.QuoteResponse{
		DurationDays:      q.DurationDays,
		CoursePrice:       q.CoursePrice,
		AccommodationCost: q.AccommodationCost,
		TotalPrice:        q.TotalPrice,
	}, "")
}

// CourseTitles lists the values accepted by the course filter.
func (ec *EnrollmentController) CourseTitles(ctx *gin.Context) {
	titles, err := ec.enrollmentService.CourseTitles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, titles, "")
}

// SetPayment changes the payment status of :id.
func (ec *EnrollmentController) SetPayment(ctx *gin.Context) {
	id, valid := parseID(ctx)
	if !valid {
		return
	}
	var req dto.PaymentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	enrollment, err := ec.enrollmentService.SetPayment(ctx.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, enrollment, "Payment status updated")
}
