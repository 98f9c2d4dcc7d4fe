package profile

import (
	"github.com/ecodeclub/jobportal/internal/profile/internal/domain"
	"github.com/ecodeclub/jobportal/internal/profile/internal/service"
	"github.com/ecodeclub/jobportal/internal/profile/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type Profile = domain.Profile

var ErrProfileNotFound = service.ErrProfileNotFound

type Module struct {
	Svc Service
	Hdl *Handler
}
