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

package ai

import (
	"fmt"

	"github.com/ecodeclub/jobportal/internal/ai/internal/domain"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator/canned"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator/log"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator/metrics"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator/platform/openai"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator/platform/zhipu"
)

type platformGenerator generator.Generator

func initPlatform(cfg Config) (platformGenerator, error) {
	switch cfg.Provider {
	case "", domain.ProviderCanned:
		return canned.NewGenerator(), nil
	case domain.ProviderOpenAI:
		return openai.NewGenerator(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case domain.ProviderZhipu:
		return zhipu.NewGenerator(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("未知的 AI 平台 %s", cfg.Provider)
	}
}

func initGenerator(root platformGenerator) Generator {
	return generator.Chain(root,
		log.NewBuilder(),
		metrics.NewBuilder("jobportal"))
}
