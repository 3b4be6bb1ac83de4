package config

type MailConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	FromName string `json:"from_name" yaml:"from_name"`
	FromMail string `json:"from_mail" yaml:"from_mail"`
}
