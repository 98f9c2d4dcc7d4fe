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

package ioc

import (
	"time"

	"github.com/ecodeclub/jobportal/internal/ai"
	"github.com/ecodeclub/jobportal/internal/coach"
	"github.com/ecodeclub/jobportal/internal/resume"
	"github.com/ecodeclub/jobportal/internal/skillgap"
	"github.com/gotomicro/ego/core/econf"
)

func initAIConfig() ai.Config {
	var cfg ai.Config
	mustUnmarshal("ai", &cfg)
	return cfg
}

func initSkillGapConfig() skillgap.Config {
	var cfg skillgap.Config
	mustUnmarshal("skillgap", &cfg)
	return cfg
}

func initResumeConfig() resume.Config {
	cfg := resume.Config{
		TemplateDir: "resume_templates",
		OutputDir:   "generated_resumes",
		BaseURL:     "/generated",
	}
	mustUnmarshal("resume", &cfg)
	return cfg
}

func initCoachConfig() coach.Config {
	cfg := coach.Config{IdleTimeout: econf.GetDuration("coach.idleTimeout")}
	if cfg.IdleTimeout <= 0 {
		// 默认一天没有新消息就关闭
		cfg.IdleTimeout = 24 * time.Hour
	}
	return cfg
}

func mustUnmarshal(key string, val any) {
	err := econf.UnmarshalKey(key, val)
	if err != nil {
		panic(err)
	}
}
