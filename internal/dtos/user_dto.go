package dtos

type RegisterRequest struct {
	Fullname    string `form:"fullname" binding:"required"`
	Email       string `form:"email" binding:"required"`
	PhoneNumber string `form:"phoneNumber" binding:"required"`
	Password    string `form:"password" binding:"required"`
	Role        string `form:"role" binding:"required,oneof=student recruiter"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Role     string `json:"role" form:"role" binding:"required"`
}

// All fields optional; absent fields leave the stored value untouched.
type UpdateProfileRequest struct {
	Fullname    string `form:"fullname"`
	Email       string `form:"email"`
	PhoneNumber string `form:"phoneNumber"`
	Bio         string `form:"bio"`
	// Comma-separated; split into the skills list.
	Skills string `form:"skills"`
}
