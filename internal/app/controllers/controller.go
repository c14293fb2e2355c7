package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/middleware"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/collection"
	"github.com/yigit/courseadmin/internal/pkg/helpers"
)

// parseID reads the :id path parameter, writing a 400 when it is not a number.
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// parseListQuery reads page, search, date and the named filters.
func parseListQuery(ctx *gin.Context, loc *time.Location, filterKeys ...string) (int, collection.Query, bool) {
	q, err := collection.ParseQuery(ctx.Request.URL.Query(), loc, filterKeys...)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid filter: "+err.Error()))
		return 0, collection.Query{}, false
	}
	return helpers.ParsePage(ctx), q, true
}

func ok(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data, message))
}

func created(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(data, message))
}

func pageResponse[T any](p collection.Page[T], q collection.Query) dto.PageResponse[T] {
	return dto.PageResponse[T]{
		Items: p.Items,
		Pagination: dto.PaginationInfo{
			CurrentPage:   p.Page,
			TotalPages:    p.TotalPages,
			PageSize:      p.PageSize,
			TotalItems:    p.Total,
			FilteredItems: p.Filtered,
		},
		Filters: q.Params(),
	}
}

func editorResponse[D any](state collection.EditorState[D]) dto.EditorResponse {
	resp := dto.EditorResponse{State: state.Mode.String(), RecordID: state.RecordID}
	if state.Open() {
		resp.Draft = state.Draft
	}
	return resp
}
