package config

type FcmConfig struct {
	// Firebase 服务账号凭证文件路径
	CredentialFile string `json:"credential_file" yaml:"credential_file"`
	// 推送总开关，关闭后分享不再发推送
	Enabled bool `json:"enabled" yaml:"enabled"`
}
