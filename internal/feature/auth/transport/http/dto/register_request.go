package dto

// RegisterReq represents the registration form body.
// It uses Gin's binding tags for validation (required, email format, password length).
type RegisterReq struct {
	Username  string `form:"username" binding:"required,max=64"`
	FirstName string `form:"firstname" binding:"required,max=64"`
	LastName  string `form:"lastname" binding:"required,max=64"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required,min=8"`
}
