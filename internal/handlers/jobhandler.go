package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/middleware"
	"github.com/joblane/joblane-backend/internal/services"
)

type JobHandler struct {
	jobs *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Post is POST /job/post (authenticated recruiter). Nine required fields.
func (h *JobHandler) Post(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, common.NewError(common.CodeUnauthorized, "User not authenticated.", nil))
		return
	}
	var req dtos.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, common.NewValidationError("Something is missing."))
		return
	}
	job, err := h.jobs.Post(c.Request.Context(), &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "New job created successfully.",
		"success": true,
		"job":     job,
	})
}

// Search is GET /job/get?keyword=; an empty keyword matches all jobs.
func (h *JobHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	jobs, err := h.jobs.Search(c.Request.Context(), keyword)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

// GetByID is GET /job/get/:id with the job's applications resolved.
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, common.NewValidationError("Invalid job id."))
		return
	}
	job, err := h.jobs.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

// AdminJobs is GET /job/getadminjobs: every job the caller created.
func (h *JobHandler) AdminJobs(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, common.NewError(common.CodeUnauthorized, "User not authenticated.", nil))
		return
	}
	jobs, err := h.jobs.ListByCreator(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}
