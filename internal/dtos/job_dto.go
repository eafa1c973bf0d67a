package dtos

type PostJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	// Comma-separated; split into the requirements list.
	Requirements string `json:"requirements" binding:"required"`
	// Sent as strings by the client; coerced to numbers by the service.
	Salary     string `json:"salary" binding:"required"`
	Location   string `json:"location" binding:"required"`
	JobType    string `json:"jobType" binding:"required"`
	Experience string `json:"experience" binding:"required"`
	Position   string `json:"position" binding:"required"`
	CompanyID  string `json:"companyId" binding:"required"`
}
