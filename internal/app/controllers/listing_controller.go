package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/middleware"
	"github.com/yigit/courseadmin/internal/pkg/collection"
)

// listingService is the read and delete side every entity shares.
type listingService[T models.Record] interface {
	Name() string
	List(ctx context.Context, page int, q collection.Query) (collection.Page[T], error)
	Refresh(ctx context.Context) error
	Show(ctx context.Context, id int64) (T, error)
	Delete(ctx context.Context, id int64) error
}

// ListingController serves the list, detail and delete routes of one entity.
type ListingController[T models.Record] struct {
	service    listingService[T]
	loc        *time.Location
	filterKeys []string
}

// NewListingController creates a listing controller. filterKeys are the query
// parameters passed through to the entity's filters.
func NewListingController[T models.Record](service listingService[T], loc *time.Location, filterKeys ...string) *ListingController[T] {
	return &ListingController[T]{service: service, loc: loc, filterKeys: filterKeys}
}

// List renders one page. Without ?page the current page is kept.
func (lc *ListingController[T]) List(ctx *gin.Context) {
	page, q, valid := parseListQuery(ctx, lc.loc, lc.filterKeys...)
	if !valid {
		return
	}
	q.Now = time.Now()

	p, err := lc.service.List(ctx.Request.Context(), page, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, pageResponse(p, q), "")
}

// Refresh reloads the list from the backend and renders the current page.
func (lc *ListingController[T]) Refresh(ctx *gin.Context) {
	if err := lc.service.Refresh(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	lc.List(ctx)
}

// Show returns one record.
func (lc *ListingController[T]) Show(ctx *gin.Context) {
	id, valid := parseID(ctx)
	if !valid {
		return
	}
	record, err := lc.service.Show(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, record, "")
}

// Delete removes one record.
func (lc *ListingController[T]) Delete(ctx *gin.Context) {
	id, valid := parseID(ctx)
	if !valid {
		return
	}
	if err := lc.service.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, gin.H{"id": id}, "Deleted")
}
