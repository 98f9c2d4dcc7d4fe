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

package log

import (
	"context"

	"github.com/ecodeclub/jobportal/internal/ai/internal/domain"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator"
	"github.com/gotomicro/ego/core/elog"
)

type Builder struct {
	logger *elog.Component
}

var _ generator.Builder = &Builder{}

func NewBuilder() *Builder {
	return &Builder{
		logger: elog.DefaultLogger,
	}
}

func (b *Builder) Next(next generator.Generator) generator.Generator {
	return generator.GenerateFunc(func(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error) {
		logger := b.logger.With(elog.String("tid", req.Tid),
			elog.Int64("uid", req.Uid),
			elog.String("biz", req.Biz))
		logger.Debug("请求 AI", elog.Int("history", len(req.History)))
		resp, err := next.Generate(ctx, req)
		if err != nil {
			logger.Error("请求 AI 失败", elog.FieldErr(err))
			return resp, err
		}
		logger.Debug("请求 AI 成功", elog.Int64("tokens", resp.Tokens))
		return resp, nil
	})
}
