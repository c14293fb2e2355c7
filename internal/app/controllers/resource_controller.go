package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/middleware"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/collection"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

// resourceService adds the editor to a listing.
type resourceService[T models.Record, D any] interface {
	listingService[T]
	EditorState() collection.EditorState[D]
	OpenCreate() collection.EditorState[D]
	Edit(ctx context.Context, id int64) (collection.EditorState[D], error)
	CloseEditor() collection.EditorState[D]
	SetDraft(d D) (collection.EditorState[D], error)
	AttachImage(up *filestorage.Upload) (collection.EditorState[D], error)
	Submit(ctx context.Context) (T, error)
}

// ResourceController serves the list and the editor of one entity.
type ResourceController[T models.Record, D any] struct {
	*ListingController[T]
	service resourceService[T, D]
	images  filestorage.Source

	// decorate adds entity specific fields to editor responses
	decorate func(resp *dto.EditorResponse)
}

// NewResourceController creates a resource controller
func NewResourceController[T models.Record, D any](
	service resourceService[T, D],
	images filestorage.Source,
	loc *time.Location,
	filterKeys ...string,
) *ResourceController[T, D] {
	return &ResourceController[T, D]{
		ListingController: NewListingController[T](service, loc, filterKeys...),
		service:           service,
		images:            images,
	}
}

func (rc *ResourceController[T, D]) editor(ctx *gin.Context, state collection.EditorState[D]) {
	resp := editorResponse(state)
	if rc.decorate != nil && state.Open() {
		rc.decorate(&resp)
	}
	ok(ctx, resp, "")
}

// Editor reports the editor state.
func (rc *ResourceController[T, D]) Editor(ctx *gin.Context) {
	rc.editor(ctx, rc.service.EditorState())
}

// OpenCreate toggles the blank create form.
func (rc *ResourceController[T, D]) OpenCreate(ctx *gin.Context) {
	rc.editor(ctx, rc.service.OpenCreate())
}

// Edit opens the form for :id.
func (rc *ResourceController[T, D]) Edit(ctx *gin.Context) {
	id, valid := parseID(ctx)
	if !valid {
		return
	}
	state, err := rc.service.Edit(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	rc.editor(ctx, state)
}

// CloseEditor cancels the open form.
func (rc *ResourceController[T, D]) CloseEditor(ctx *gin.Context) {
	rc.editor(ctx, rc.service.CloseEditor())
}

// PutDraft replaces the open draft with the request body. Nothing is
// validated until submit.
func (rc *ResourceController[T, D]) PutDraft(ctx *gin.Context) {
	var draft D
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request format"))
		return
	}
	state, err := rc.service.SetDraft(draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	rc.editor(ctx, state)
}

// AttachImage stages the multipart "image" file on the open draft.
func (rc *ResourceController[T, D]) AttachImage(ctx *gin.Context) {
	up, valid := rc.readImage(ctx, "image")
	if !valid {
		return
	}
	state, err := rc.service.AttachImage(up)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	rc.editor(ctx, state)
}

func (rc *ResourceController[T, D]) readImage(ctx *gin.Context, field string) (*filestorage.Upload, bool) {
	header, err := ctx.FormFile(field)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Please choose an image"))
		return nil, false
	}
	up, err := rc.images.FromHeader(header)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return up, true
}

// Submit saves the open draft.
func (rc *ResourceController[T, D]) Submit(ctx *gin.Context) {
	creating := rc.service.EditorState().Mode == collection.EditorCreate

	record, err := rc.service.Submit(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if creating {
		created(ctx, record, "Created")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record, "Updated"))
}
