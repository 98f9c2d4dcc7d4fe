// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/jobportal/internal/coach/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseIdleSessionsJob)(nil)

// CloseIdleSessionsJob 关闭长时间没有新消息的会话
type CloseIdleSessionsJob struct {
	svc    service.Service
	idle   time.Duration
	logger *elog.Component
}

func NewCloseIdleSessionsJob(svc service.Service, idle time.Duration) *CloseIdleSessionsJob {
	return &CloseIdleSessionsJob{
		svc:    svc,
		idle:   idle,
		logger: elog.DefaultLogger,
	}
}

func (c *CloseIdleSessionsJob) Name() string {
	return "CloseIdleCoachSessionsJob"
}

func (c *CloseIdleSessionsJob) Run(ctx context.Context) error {
	cnt, err := c.svc.CloseIdle(ctx, time.Now().Add(-c.idle))
	if err != nil {
		return fmt.Errorf("关闭空闲会话失败: %w", err)
	}
	c.logger.Info("关闭空闲会话", elog.Int64("count", cnt))
	return nil
}
