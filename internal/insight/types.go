package insight

import (
	"github.com/ecodeclub/jobportal/internal/insight/internal/service"
	"github.com/ecodeclub/jobportal/internal/insight/internal/web"
)

type Handler = web.Handler
type Service = service.Service

type Module struct {
	Svc Service
	Hdl *Handler
}
