package config

type OssConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Region   string `json:"region" yaml:"region"`
	Bucket   string `json:"bucket" yaml:"bucket"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
