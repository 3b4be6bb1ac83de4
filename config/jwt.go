package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// access token 有效期（分钟）
	AccessExpireMinutes int `json:"access_expire_minutes" yaml:"access_expire_minutes"`
	// refresh token 有效期（天）
	RefreshExpireDays int `json:"refresh_expire_days" yaml:"refresh_expire_days"`
}
