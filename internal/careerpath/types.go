package careerpath

import (
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/domain"
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/service"
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type CareerPath = domain.CareerPath
type Milestone = domain.Milestone

type Module struct {
	Svc Service
	Hdl *Handler
}
