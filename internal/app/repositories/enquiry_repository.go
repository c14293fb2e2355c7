package repositories

import (
	"context"
	"net/http"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
)

// EnquiryRepository calls the enquiry endpoints
type EnquiryRepository struct {
	res resource[models.Enquiry]
}

// NewEnquiryRepository creates an enquiry repository
func NewEnquiryRepository(client *Client) *EnquiryRepository {
	return &EnquiryRepository{res: resource[models.Enquiry]{client: client, name: "enquiries"}}
}

// List returns every enquiry
func (r *EnquiryRepository) List(ctx context.Context) ([]models.Enquiry, error) {
	return r.res.list(ctx, nil)
}

// GetByID returns one enquiry
func (r *EnquiryRepository) GetByID(ctx context.Context, id int64) (models.Enquiry, error) {
	return r.res.get(ctx, id)
}

// Delete removes an enquiry
func (r *EnquiryRepository) Delete(ctx context.Context, id int64) error {
	return r.res.delete(ctx, id)
}

// UpdateStatus moves an enquiry to status
func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id int64, status models.EnquiryStatus) (models.Enquiry, error) {
	var out models.Enquiry
	err := r.res.client.sendJSON(ctx, http.MethodPatch, itemPath("enquiries", id, "status"),
		dto.EnquiryStatusRequest{Status: status}, &out)
	return out, err
}
