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

package generator

import (
	"context"

	"github.com/ecodeclub/jobportal/internal/ai/internal/domain"
)

//go:generate mockgen -source=./type.go -destination=../../../mocks/generator.mock.go -package=aimocks -typed=true Generator
type Generator interface {
	Generate(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error)
}

type GenerateFunc func(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error)

func (f GenerateFunc) Generate(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error) {
	return f(ctx, req)
}

// Builder 用于在 Generator 外面包装一层，例如日志、监控
type Builder interface {
	Next(next Generator) Generator
}

// Chain 按照 builders 的顺序从外到内包装 root
// 也就是 builders[0] 最先拿到请求
func Chain(root Generator, builders ...Builder) Generator {
	res := root
	for i := len(builders) - 1; i >= 0; i-- {
		res = builders[i].Next(res)
	}
	return res
}
