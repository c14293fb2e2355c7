package repositories

import (
	"context"
	"net/http"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
)

// EnrollmentRepository calls the enrollment endpoints
type EnrollmentRepository struct {
	res resource[models.Enrollment]
}

// NewEnrollmentRepository creates an enrollment repository
func NewEnrollmentRepository(client *Client) *EnrollmentRepository {
	return &EnrollmentRepository{res: resource[models.Enrollment]{client: client, name: "enrollments"}}
}

// List returns every enrollment
func (r *EnrollmentRepository) List(ctx context.Context) ([]models.Enrollment, error) {
	return r.res.list(ctx, nil)
}

// GetByID returns one enrollment
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (models.Enrollment, error) {
	return r.res.get(ctx, id)
}

// Create submits a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, req dto.EnrollmentRequest) (models.Enrollment, error) {
	return r.res.createJSON(ctx, req)
}

// Update replaces an enrollment
func (r *EnrollmentRepository) Update(ctx context.Context, id int64, req dto.EnrollmentRequest) (models.Enrollment, error) {
	return r.res.updateJSON(ctx, id, req)
}

// Delete removes an enrollment
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	return r.res.delete(ctx, id)
}

// UpdatePayment sets the payment status and returns the stored enrollment
func (r *EnrollmentRepository) UpdatePayment(ctx context.Context, id int64, status models.PaymentStatus) (models.Enrollment, error) {
	var out models.Enrollment
	err := r.res.client.sendJSON(ctx, http.MethodPut, itemPath("enrollments", id, "payment"),
		dto.PaymentRequest{PaymentStatus: status}, &out)
	return out, err
}
