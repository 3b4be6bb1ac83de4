package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Name  string `json:"name" yaml:"name"`
	Debug bool   `json:"debug" yaml:"debug"`
	// 前端地址，用于邮件里的静态资源链接
	FrontendHost string `json:"frontend_host" yaml:"frontend_host"`
}
