package dtos

type RegisterCompanyRequest struct {
	CompanyName string `json:"companyName" form:"companyName" binding:"required"`
}

type UpdateCompanyRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Website     string `form:"website"`
	Location    string `form:"location"`
}
