package dtos

type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}
