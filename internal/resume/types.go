package resume

import (
	"github.com/ecodeclub/jobportal/internal/resume/internal/domain"
	"github.com/ecodeclub/jobportal/internal/resume/internal/service"
	"github.com/ecodeclub/jobportal/internal/resume/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type Resume = domain.Resume
type Template = domain.Template

// Config 对应配置文件里面的 resume 部分
type Config struct {
	// TemplateDir 模板文件只能放在这个目录下，模板的相对路径基于这个目录
	TemplateDir string `yaml:"templateDir"`
	// OutputDir 生成的简历文件存放的目录
	OutputDir string `yaml:"outputDir"`
	// BaseURL OutputDir 对外暴露的地址
	BaseURL string `yaml:"baseURL"`
}

type Module struct {
	Svc Service
	Hdl *Handler
}
