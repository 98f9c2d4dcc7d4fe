package skillgap

import (
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/domain"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/service"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type Analysis = domain.Analysis
type MissingSkill = domain.MissingSkill
type Config = domain.Config
type Taxonomy = domain.Taxonomy
type Bucket = domain.Bucket

var ErrAnalysisNotFound = service.ErrAnalysisNotFound

type Module struct {
	Svc Service
	Hdl *Handler
}
