package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/middleware"
)

// AuthController handles the console session
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login exchanges admin credentials for a backend token.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	sess, err := ac.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, sess, "Logged in")
}

// Logout ends the session in every open tab.
func (ac *AuthController) Logout(ctx *gin.Context) {
	if err := ac.authService.Logout(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, ac.authService.Session(), "Logged out")
}

// Session describes the current session.
func (ac *AuthController) Session(ctx *gin.Context) {
	ok(ctx, ac.authService.Session(), "")
}
