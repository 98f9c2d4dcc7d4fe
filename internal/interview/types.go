package interview

import (
	"github.com/ecodeclub/jobportal/internal/interview/internal/domain"
	"github.com/ecodeclub/jobportal/internal/interview/internal/service"
	"github.com/ecodeclub/jobportal/internal/interview/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type Interview = domain.Interview

type Module struct {
	Svc Service
	Hdl *Handler
}
