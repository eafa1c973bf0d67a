package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/middleware"
	"github.com/joblane/joblane-backend/internal/security"
	"github.com/joblane/joblane-backend/internal/services"
)

type UserHandler struct {
	users         *services.UserService
	tokens        *security.TokenProvider
	secureCookies bool
}

// NewUserHandler creates the handler with dependencies. secureCookies should
// be true in production so the token cookie only travels over HTTPS.
func NewUserHandler(users *services.UserService, tokens *security.TokenProvider, secureCookies bool) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, secureCookies: secureCookies}
}

// Register is POST /user/register. Multipart; the optional file becomes the
// profile photo. No auto-login: the client logs in afterwards.
func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, common.NewValidationError("All fields are required."))
		return
	}
	file, err := fileFromRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := h.users.Register(c.Request.Context(), &req, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully.",
		"success": true,
		"user":    user,
	})
}

// Login is POST /user/login. Issues the token cookie on success.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, common.NewValidationError("All fields are required."))
		return
	}
	user, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := h.tokens.Sign(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome back " + user.Fullname,
		"success": true,
		"user":    user,
	})
}

// Logout is POST /user/logout. Clearing the cookie always succeeds, session
// or not.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully.",
		"success": true,
	})
}

// UpdateProfile is POST /user/profile/update (authenticated). Partial update;
// an uploaded file becomes the resume.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, common.NewError(common.CodeUnauthorized, "User not authenticated.", nil))
		return
	}
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, common.NewValidationError("Invalid request."))
		return
	}
	file, err := fileFromRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := h.users.UpdateProfile(c.Request.Context(), userID, &req, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully.",
		"success": true,
		"user":    user,
	})
}

func (h *UserHandler) setTokenCookie(c *gin.Context, token string) {
	maxAge := int(h.tokens.TTL().Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", h.secureCookies, true)
}
