package types

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// 可选，登录时顺带注册推送 token
	FcmToken string `json:"fcm_token"`
	Device   string `json:"device"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type GoogleLoginRequest struct {
	// Google OAuth 的 access token，后端拿它换 userinfo
	AccessToken string `json:"access_token" binding:"required"`
	FcmToken    string `json:"fcm_token"`
	Device      string `json:"device"`
}

type LogoutRequest struct {
	FcmToken string `json:"fcm_token"`
}

type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	User         *UserResponse `json:"user"`
}

// OTP 用途
const (
	OTPPurposeRegister = "register"
	OTPPurposeRecovery = "recovery"
)

type OTPRequestRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose" binding:"required,oneof=register recovery"`
}

type OTPRequestResponse struct {
	// 绑定 email+code 的一次性凭证，验证时带回
	OtpToken string `json:"otp_token"`
}

type OTPVerifyRequest struct {
	OtpToken string `json:"otp_token" binding:"required"`
	Code     string `json:"code" binding:"required,len=6"`
}

type OTPVerifyResponse struct {
	// 核销成功的邮箱
	Email string `json:"email"`
	// 校验通过后签发的重置凭证，仅 recovery 用途返回
	ResetToken string `json:"reset_token,omitempty"`
}

type ResetPasswordRequest struct {
	ResetToken  string `json:"reset_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
