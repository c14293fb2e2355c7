package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/middleware"
)

// EnquiryController serves the enquiry inbox. Enquiries are created by the
// public site, so there is no editor.
type EnquiryController struct {
	*ListingController[models.Enquiry]
	enquiryService *services.EnquiryService
}

// NewEnquiryController creates a new enquiry controller
func NewEnquiryController(enquiryService *services.EnquiryService, loc *time.Location) *EnquiryController {
	return &EnquiryController{
		ListingController: NewListingController[models.Enquiry](enquiryService, loc, services.FilterStatus),
		enquiryService:    enquiryService,
	}
}

// SetStatus moves :id through the enquiry workflow.
func (ec *EnquiryController) SetStatus(ctx *gin.Context) {
	id, valid := parseID(ctx)
	if !valid {
		return
	}
	var req dto.EnquiryStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	enquiry, err := ec.enquiryService.SetStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, enquiry, "Status updated")
}
