package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/middleware"
	"github.com/joblane/joblane-backend/internal/services"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *services.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

// Apply is GET /application/apply/:id (authenticated student). Applying twice
// to the same job is a conflict.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, common.NewError(common.CodeUnauthorized, "User not authenticated.", nil))
		return
	}
	raw := c.Param("id")
	if raw == "" {
		respondError(c, common.NewValidationError("Job id is required."))
		return
	}
	jobID, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, common.NewValidationError("Invalid job id."))
		return
	}
	if h.limiter != nil {
		key := "apply:" + jobID.String() + ":" + userID.String()
		if !h.limiter.Allow(key, 3, time.Minute) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests. Try again later.",
				"success": false,
			})
			return
		}
	}
	if err := h.applications.Apply(c.Request.Context(), jobID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job applied successfully.",
		"success": true,
	})
}

// List is GET /application/get: the caller's applications, newest-first,
// with each job and its company resolved.
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, common.NewError(common.CodeUnauthorized, "User not authenticated.", nil))
		return
	}
	applications, err := h.applications.ListForApplicant(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": applications,
	})
}

// Applicants is GET /application/:id/applicants: the job with its
// applications and each applicant record.
func (h *ApplicationHandler) Applicants(c *gin.Context) {
	raw := c.Param("id")
	if raw == "" {
		respondError(c, common.NewValidationError("Job ID is required."))
		return
	}
	jobID, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, common.NewValidationError("Invalid job id."))
		return
	}
	job, err := h.applications.Applicants(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

// UpdateStatus is POST /application/status/:id/update.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, common.NewValidationError("Invalid application id."))
		return
	}
	var req dtos.UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, common.NewValidationError("Status is required."))
		return
	}
	if err := h.applications.UpdateStatus(c.Request.Context(), applicationID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully.",
		"success": true,
	})
}
