package controllers

import (
	"strconv"
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

// CourseController adds the multi-step form, image slots and the visibility
// switch to the course resource.
type CourseController struct {
	*ResourceController[models.Course, forms.CourseDraft]
	courseService *services.CourseService
}

// NewCourseController creates a new course controller
func NewCourseController(courseService *services.CourseService, images filestorage.Source, loc *time.Location) *CourseController {
	rc := NewResourceController[models.Course, forms.CourseDraft](courseService, images, loc, "category")
	rc.decorate = func(resp *dto.EditorResponse) {
		step, steps, _ := courseService.Step()
		resp.Step, resp.Steps = step, steps
	}
	return &CourseController{ResourceController: rc, courseService: courseService}
}

// NextStep advances the open form.
func (cc *CourseController) NextStep(ctx *gin.Context) {
	if _, err := cc.courseService.NextStep(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	cc.Editor(ctx)
}

// PrevStep goes back one step.
func (cc *CourseController) PrevStep(ctx *gin.Context) {
	if _, err := cc.courseService.PrevStep(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	cc.Editor(ctx)
}

func parseSlot(ctx *gin.Context) (int, bool) {
	slot, err := strconv.Atoi(ctx.Param("slot"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Unknown image slot"))
		return 0, false
	}
	return slot, true
}

// StageImage sets the image of :slot from the multipart "image" file.
func (cc *CourseController) StageImage(ctx *gin.Context) {
	slot, valid := parseSlot(ctx)
	if !valid {
		return
	}
	up, valid := cc.readImage(ctx, "image")
	if !valid {
		return
	}
	state, err := cc.courseService.StageImage(slot, up)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	cc.editor(ctx, state)
}

// DropImage clears the image of :slot.
func (cc *CourseController) DropImage(ctx *gin.Context) {
	slot, valid := parseSlot(ctx)
	if !valid {
		return
	}
	state, err := cc.courseService.DropImage(slot)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	cc.editor(ctx, state)
}

// ToggleAccommodation links or unlinks the accommodation :id on the open draft.
func (cc *CourseController) ToggleAccommodation(ctx *gin.Context) {
	id, valid := parseID(ctx)
	if !valid {
		return
	}
	state, err := cc.courseService.ToggleAccommodation(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	cc.editor(ctx, state)
}

// ToggleVisibility flips whether the course is shown publicly.
func (cc *CourseController) ToggleVisibility(ctx *gin.Context) {
	id, valid := parseID(ctx)
	if !valid {
		return
	}
	course, err := cc.courseService.ToggleVisibility(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, course, "Visibility updated")
}
