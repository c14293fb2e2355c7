package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/app/session"
	"github.com/yigit/courseadmin/internal/pkg/notify"
)

// fakeBackend is an in-memory stand-in for the admin REST API.
type fakeBackend struct {
	mu             sync.Mutex
	nextID         int64
	courses        []models.Course
	instructors    []models.Instructor
	accommodations []models.Accommodation
	enrollments    []models.Enrollment
	enquiries      []models.Enquiry

	failVisibility bool
	failDelete     bool
	// hold blocks the visibility handler until closed.
	hold chan struct{}

	deletes      []string
	gets         []string
	enrollBodies []dto.EnrollmentRequest
	paymentPuts  int
}

type fixture struct {
	backend  *fakeBackend
	repos    *repositories.Repositories
	services *Services
	notes    *notify.Recorder
	session  *session.Session
}

func newFixture(t *testing.T, backend *fakeBackend) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if backend.nextID == 0 {
		backend.nextID = 100
	}

	r := gin.New()
	backend.register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	sess, err := session.Open(&session.MemoryStore{}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	client := repositories.NewClient(repositories.ClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, sess, zerolog.Nop())
	repos := repositories.NewRepositories(client, false)

	notes := &notify.Recorder{}
	svcs := NewServices(repos, sess, Settings{PageSize: 5, EnrollmentPageSize: 6, Location: time.UTC},
		Deps{Notifier: notes, Logger: zerolog.Nop()})

	return &fixture{backend: backend, repos: repos, services: svcs, notes: notes, session: sess}
}

func (b *fakeBackend) register(r *gin.Engine) {
	r.POST("/api/auth/login", func(c *gin.Context) {
		var req dto.LoginRequest
		_ = c.ShouldBindJSON(&req)
		if req.Password != "secret" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Bad credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": "opaque-token"})
	})

	admin := r.Group("/api/admin")

	admin.GET("/courses", func(c *gin.Context) { b.reply(c, &b.courses) })
	admin.POST("/courses", func(c *gin.Context) {
		var req dto.CourseRequest
		if err := decodePart(c, "course", &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		b.mu.Lock()
		b.nextID++
		course := models.Course{ID: b.nextID, Title: req.Title, Price: req.Price, IsVisible: req.IsVisible,
			InstructorID: req.InstructorID, Duration: req.Duration, CreatedAt: models.NewTimestamp(time.Now())}
		b.courses = append(b.courses, course)
		b.mu.Unlock()
		c.JSON(http.StatusCreated, course)
	})
	admin.GET("/courses/:id", func(c *gin.Context) {
		b.getHandler(c, "courses", func(id int64) (interface{}, bool) {
			for _, course := range b.courses {
				if course.ID == id {
					return course, true
				}
			}
			return nil, false
		})
	})
	admin.DELETE("/courses/:id", b.deleteHandler("courses"))
	admin.PATCH("/courses/:id/visibility", func(c *gin.Context) {
		if b.hold != nil {
			<-b.hold
		}
		if b.failVisibility {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		id := paramID(c)
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.courses {
			if b.courses[i].ID == id {
				b.courses[i].IsVisible = !b.courses[i].IsVisible
				c.JSON(http.StatusOK, b.courses[i])
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
	})

	admin.GET("/instructors", func(c *gin.Context) { b.reply(c, &b.instructors) })
	admin.GET("/instructors/:id", func(c *gin.Context) {
		b.getHandler(c, "instructors", func(id int64) (interface{}, bool) {
			for _, instructor := range b.instructors {
				if instructor.ID == id {
					return instructor, true
				}
			}
			return nil, false
		})
	})
	admin.DELETE("/instructors/:id", b.deleteHandler("instructors"))

	admin.GET("/accommodations", func(c *gin.Context) { b.reply(c, &b.accommodations) })

	admin.GET("/enrollments", func(c *gin.Context) { b.reply(c, &b.enrollments) })
	admin.POST("/enrollments", func(c *gin.Context) {
		var req dto.EnrollmentRequest
		_ = c.ShouldBindJSON(&req)
		b.mu.Lock()
		b.enrollBodies = append(b.enrollBodies, req)
		b.nextID++
		e := models.Enrollment{ID: b.nextID, FullName: req.FullName, Email: req.Email, CourseID: req.CourseID,
			PaymentMode: req.PaymentMode, PaymentStatus: models.PaymentPending, TotalPrice: req.TotalPrice}
		b.enrollments = append(b.enrollments, e)
		b.mu.Unlock()
		c.JSON(http.StatusCreated, e)
	})
	admin.PUT("/enrollments/:id", func(c *gin.Context) {
		var req dto.EnrollmentRequest
		_ = c.ShouldBindJSON(&req)
		id := paramID(c)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.enrollBodies = append(b.enrollBodies, req)
		for i := range b.enrollments {
			if b.enrollments[i].ID == id {
				e := &b.enrollments[i]
				e.PaymentMode, e.TotalPrice = req.PaymentMode, req.TotalPrice
				if req.PaymentStatus != "" {
					e.PaymentStatus = req.PaymentStatus
				}
				c.JSON(http.StatusOK, e)
				return
			}
		}
		c.Status(http.StatusNotFound)
	})
	admin.PUT("/enrollments/:id/payment", func(c *gin.Context) {
		var req dto.PaymentRequest
		_ = c.ShouldBindJSON(&req)
		id := paramID(c)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.paymentPuts++
		for i := range b.enrollments {
			if b.enrollments[i].ID == id {
				b.enrollments[i].PaymentStatus = req.PaymentStatus
				c.JSON(http.StatusOK, b.enrollments[i])
				return
			}
		}
		c.Status(http.StatusNotFound)
	})

	admin.GET("/enquiries", func(c *gin.Context) { b.reply(c, &b.enquiries) })
	admin.PATCH("/enquiries/:id/status", func(c *gin.Context) {
		var req dto.EnquiryStatusRequest
		_ = c.ShouldBindJSON(&req)
		id := paramID(c)
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.enquiries {
			if b.enquiries[i].ID == id {
				b.enquiries[i].Status = req.Status
				c.JSON(http.StatusOK, b.enquiries[i])
				return
			}
		}
		c.Status(http.StatusNotFound)
	})

	admin.GET("/testimonials", func(c *gin.Context) { c.JSON(http.StatusOK, []models.Testimonial{}) })
	admin.GET("/gallery", func(c *gin.Context) { c.JSON(http.StatusOK, []models.GalleryItem{}) })
}

func (b *fakeBackend) reply(c *gin.Context, list interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, list)
}

// getHandler serves one record found by lookup, recording the request.
func (b *fakeBackend) getHandler(c *gin.Context, collection string, lookup func(id int64) (interface{}, bool)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gets = append(b.gets, collection+"/"+c.Param("id"))
	record, ok := lookup(paramID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (b *fakeBackend) deleteHandler(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.deletes = append(b.deletes, collection+"/"+c.Param("id"))
		if b.failDelete {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot delete right now"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func decodePart(c *gin.Context, name string, out interface{}) error {
	fh, err := c.FormFile(name)
	if err != nil {
		return err
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(out)
}

func paramID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}

func price(v float64) *float64 { return &v }
func ref(v int64) *int64       { return &v }

func loginReq(user, pass string) dto.LoginRequest {
	return dto.LoginRequest{Username: user, Password: pass}
}
