package recommend

import (
	"github.com/ecodeclub/jobportal/internal/recommend/internal/domain"
	"github.com/ecodeclub/jobportal/internal/recommend/internal/service"
	"github.com/ecodeclub/jobportal/internal/recommend/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type Recommendation = domain.Recommendation

type Module struct {
	Svc Service
	Hdl *Handler
}
