package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/collection"
	"github.com/yigit/courseadmin/internal/pkg/notify"
	"golang.org/x/sync/errgroup"
)

// DashboardService summarizes every collection
type DashboardService struct {
	repos    *repositories.Repositories
	loc      *time.Location
	notifier notify.Notifier
	logger   zerolog.Logger
	now      func() time.Time
}

// NewDashboardService creates the dashboard service. loc decides what "today" means.
func NewDashboardService(repos *repositories.Repositories, loc *time.Location, deps Deps) *DashboardService {
	if deps.Notifier == nil {
		deps.Notifier = notify.Discard
	}
	return &DashboardService{
		repos:    repos,
		loc:      loc,
		notifier: deps.Notifier,
		logger:   deps.Logger.With().Str("service", "dashboard").Logger(),
		now:      time.Now,
	}
}

// Stats fetches the seven lists concurrently and counts them. Any failure
// fails the whole summary.
func (s *DashboardService) Stats(ctx context.Context) (dto.DashboardStats, error) {
	var (
		courses        []models.Course
		instructors    []models.Instructor
		accommodations []models.Accommodation
		enrollments    []models.Enrollment
		enquiries      []models.Enquiry
		testimonials   []models.Testimonial
		gallery        []models.GalleryItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		courses, err = s.repos.Course.List(gctx)
		return
	})
	g.Go(func() (err error) {
		instructors, err = s.repos.Instructor.List(gctx)
		return
	})
	g.Go(func() (err error) {
		accommodations, err = s.repos.Accommodation.List(gctx)
		return
	})
	g.Go(func() (err error) {
		enrollments, err = s.repos.Enrollment.List(gctx)
		return
	})
	g.Go(func() (err error) {
		enquiries, err = s.repos.Enquiry.List(gctx)
		return
	})
	g.Go(func() (err error) {
		testimonials, err = s.repos.Testimonial.List(gctx)
		return
	})
	g.Go(func() (err error) {
		gallery, err = s.repos.Gallery.List(gctx)
		return
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard load failed")
		notify.Error(s.notifier, "Failed to load dashboard data")
		return dto.DashboardStats{}, err
	}

	stats := dto.DashboardStats{
		Courses:        len(courses),
		Instructors:    len(instructors),
		Accommodations: len(accommodations),
		Enrollments:    len(enrollments),
		Enquiries:      len(enquiries),
		Testimonials:   len(testimonials),
		GalleryItems:   len(gallery),
	}
	for _, c := range courses {
		if c.IsVisible {
			stats.VisibleCourses++
		}
	}
	today := s.now()
	for _, e := range enrollments {
		if e.IsPaid() {
			stats.PaidEnrollments++
			stats.Revenue += e.TotalPrice
		} else {
			stats.PendingEnrollments++
		}
		if !e.CreatedAt.IsZero() && collection.SameDay(e.CreatedAt.Time, today, s.loc) {
			stats.TodayEnrollments++
		}
	}
	for _, e := range enquiries {
		if e.Status != models.EnquiryResolved {
			stats.OpenEnquiries++
		}
	}

	return stats, nil
}
