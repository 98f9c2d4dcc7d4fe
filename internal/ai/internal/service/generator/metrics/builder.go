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

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/jobportal/internal/ai/internal/domain"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator"
	"github.com/prometheus/client_golang/prometheus"
)

// Builder 统计每个 biz 调用 AI 的耗时和结果
type Builder struct {
	summaryVec *prometheus.SummaryVec
}

var _ generator.Builder = &Builder{}

func NewBuilder(namespace string) *Builder {
	summaryVec := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: namespace,
		Subsystem: "ai",
		Name:      "generate_duration_seconds",
		Help:      "AI generate duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, []string{"biz", "status"})
	err := prometheus.Register(summaryVec)
	if err != nil {
		// 测试里面会多次初始化，复用已经注册的
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		summaryVec = are.ExistingCollector.(*prometheus.SummaryVec)
	}
	return &Builder{summaryVec: summaryVec}
}

func (b *Builder) Next(next generator.Generator) generator.Generator {
	return generator.GenerateFunc(func(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error) {
		start := time.Now()
		resp, err := next.Generate(ctx, req)
		status := "ok"
		if err != nil {
			status = "error"
		}
		b.summaryVec.WithLabelValues(req.Biz, status).Observe(time.Since(start).Seconds())
		return resp, err
	})
}
