package types

type AdminUserListQuery struct {
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
	Keyword string `form:"q"`
}

type AdminCreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

type AdminUpdateUserRequest struct {
	FullName         *string `json:"full_name"`
	Role             *string `json:"role" binding:"omitempty,oneof=user admin"`
	BudgetPreference *int    `json:"budget_preference"`
}
