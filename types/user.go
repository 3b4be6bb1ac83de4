package types

import "gorm.io/datatypes"

type UserResponse struct {
	UserID           string         `json:"user_id"`
	Username         string         `json:"username"`
	Email            string         `json:"email"`
	FullName         string         `json:"full_name"`
	Role             string         `json:"role"`
	ProfilePicture   string         `json:"profile_picture"`
	Preferences      datatypes.JSON `json:"preferences,omitempty"`
	BudgetPreference int            `json:"budget_preference"`
}

type UpdateMeRequest struct {
	Username         string         `json:"username"`
	FullName         string         `json:"full_name"`
	Preferences      datatypes.JSON `json:"preferences"`
	BudgetPreference *int           `json:"budget_preference"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UploadAvatarResponse struct {
	ProfilePicture string `json:"profile_picture"`
}

type RegisterFcmTokenRequest struct {
	FcmToken string `json:"fcm_token" binding:"required"`
	Device   string `json:"device"`
}
