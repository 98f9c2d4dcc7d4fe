package coach

import (
	"time"

	"github.com/ecodeclub/jobportal/internal/coach/internal/domain"
	"github.com/ecodeclub/jobportal/internal/coach/internal/job"
	"github.com/ecodeclub/jobportal/internal/coach/internal/service"
	"github.com/ecodeclub/jobportal/internal/coach/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type Session = domain.Session
type CloseIdleSessionsJob = job.CloseIdleSessionsJob

type Config struct {
	// IdleTimeout 超过这个时间没有新消息的会话会被定时任务关闭
	IdleTimeout time.Duration `yaml:"idleTimeout"`
}

type Module struct {
	Svc          Service
	Hdl          *Handler
	CloseIdleJob *CloseIdleSessionsJob
}
