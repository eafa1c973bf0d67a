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

type CompanyHandler struct {
	companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// Register is POST /company/register (authenticated recruiter).
func (h *CompanyHandler) Register(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, common.NewError(common.CodeUnauthorized, "User not authenticated.", nil))
		return
	}
	var req dtos.RegisterCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, common.NewValidationError("Company name is required."))
		return
	}
	company, err := h.companies.Register(c.Request.Context(), req.CompanyName, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully.",
		"success": true,
		"company": company,
	})
}

// List is GET /company/get: the caller's companies.
func (h *CompanyHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, common.NewError(common.CodeUnauthorized, "User not authenticated.", nil))
		return
	}
	companies, err := h.companies.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"companies": companies,
	})
}

// GetByID is GET /company/get/:id.
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, common.NewValidationError("Invalid company id."))
		return
	}
	company, err := h.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"company": company,
	})
}

// Update is PUT /company/update/:id. Multipart; the optional file becomes
// the logo.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, common.NewValidationError("Invalid company id."))
		return
	}
	var req dtos.UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, common.NewValidationError("Invalid request."))
		return
	}
	logo, err := fileFromRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}
	company, err := h.companies.Update(c.Request.Context(), id, &req, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company information updated.",
		"success": true,
		"company": company,
	})
}
