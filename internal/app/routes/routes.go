package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/controllers"
	"github.com/yigit/courseadmin/internal/middleware"
	"github.com/yigit/courseadmin/internal/pkg/websocket"
)

// Prefix is the root of every console route.
const Prefix = "/api/console"

// editorRoutes are the handlers every editable entity shares.
type editorRoutes interface {
	List(*gin.Context)
	Refresh(*gin.Context)
	Show(*gin.Context)
	Delete(*gin.Context)
	Editor(*gin.Context)
	OpenCreate(*gin.Context)
	Edit(*gin.Context)
	CloseEditor(*gin.Context)
	PutDraft(*gin.Context)
	AttachImage(*gin.Context)
	Submit(*gin.Context)
}

// SetupRouter configures all console routes
func SetupRouter(
	router *gin.Engine,
	ctl *controllers.Controllers,
	events *websocket.Handler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	console := router.Group(Prefix)
	console.Use(sessionMiddleware.ExpireOnUnauthorized())

	// --- Public routes ---
	auth := console.Group("/auth")
	{
		auth.POST("/login", ctl.Auth.Login)
		auth.POST("/logout", ctl.Auth.Logout)
		auth.GET("/session", ctl.Auth.Session)
	}

	// Tabs stay connected across logins so they can hear the logout
	console.GET("/events", events.HandleConnection)

	// --- Authenticated routes ---
	authenticated := console.Group("")
	authenticated.Use(sessionMiddleware.Required())

	authenticated.GET("/dashboard", ctl.Dashboard.Stats)

	courses := authenticated.Group("/courses")
	registerEditor(courses, ctl.Courses)
	{
		courses.POST("/editor/next", ctl.Courses.NextStep)
		courses.POST("/editor/back", ctl.Courses.PrevStep)
		courses.PUT("/editor/images/:slot", ctl.Courses.StageImage)
		courses.DELETE("/editor/images/:slot", ctl.Courses.DropImage)
		courses.POST("/editor/accommodations/:id", ctl.Courses.ToggleAccommodation)
		courses.PATCH("/:id/visibility", ctl.Courses.ToggleVisibility)
	}

	registerEditor(authenticated.Group("/instructors"), ctl.Instructors)
	registerEditor(authenticated.Group("/accommodations"), ctl.Accommodations)
	registerEditor(authenticated.Group("/testimonials"), ctl.Testimonials)
	registerEditor(authenticated.Group("/gallery"), ctl.Gallery)

	enrollments := authenticated.Group("/enrollments")
	registerEditor(enrollments, ctl.Enrollments)
	{
		enrollments.POST("/quote", ctl.Enrollments.Quote)
		enrollments.GET("/courses", ctl.Enrollments.CourseTitles)
		enrollments.PUT("/:id/payment", ctl.Enrollments.SetPayment)
	}

	enquiries := authenticated.Group("/enquiries")
	{
		enquiries.GET("", ctl.Enquiries.List)
		enquiries.POST("/refresh", ctl.Enquiries.Refresh)
		enquiries.GET("/:id", ctl.Enquiries.Show)
		enquiries.DELETE("/:id", ctl.Enquiries.Delete)
		enquiries.PATCH("/:id/status", ctl.Enquiries.SetStatus)
	}
}

func registerEditor(group *gin.RouterGroup, c editorRoutes) {
	group.GET("", c.List)
	group.POST("/refresh", c.Refresh)
	group.GET("/:id", c.Show)
	group.DELETE("/:id", c.Delete)

	group.GET("/editor", c.Editor)
	group.POST("/editor", c.OpenCreate)
	group.POST("/editor/edit/:id", c.Edit)
	group.DELETE("/editor", c.CloseEditor)
	group.PUT("/editor/draft", c.PutDraft)
	group.PUT("/editor/image", c.AttachImage)
	group.POST("/editor/submit", c.Submit)
}

// HealthCheck reports that the console is serving
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
