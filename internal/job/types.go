package job

import (
	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"github.com/ecodeclub/jobportal/internal/job/internal/service"
	"github.com/ecodeclub/jobportal/internal/job/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type Job = domain.Job
type Company = domain.Company

var ErrJobNotFound = service.ErrJobNotFound

type Module struct {
	Svc Service
	Hdl *Handler
}
