package config

type GoogleConfig struct {
	// ClientID 非空时登录会校验 token 受众
	ClientID string `json:"client_id" yaml:"client_id"`
}
