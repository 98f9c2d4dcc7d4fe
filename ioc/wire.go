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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/jobportal/internal/ai"
	"github.com/ecodeclub/jobportal/internal/careerpath"
	"github.com/ecodeclub/jobportal/internal/coach"
	"github.com/ecodeclub/jobportal/internal/insight"
	"github.com/ecodeclub/jobportal/internal/interview"
	"github.com/ecodeclub/jobportal/internal/job"
	"github.com/ecodeclub/jobportal/internal/profile"
	"github.com/ecodeclub/jobportal/internal/recommend"
	"github.com/ecodeclub/jobportal/internal/resume"
	"github.com/ecodeclub/jobportal/internal/skillgap"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

var configSet = wire.NewSet(initAIConfig, initSkillGapConfig, initResumeConfig, initCoachConfig)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		configSet,
		ai.InitModule,
		profile.InitModule,
		job.InitModule,
		skillgap.InitModule,
		careerpath.InitModule,
		recommend.InitModule,
		coach.InitModule,
		interview.InitModule,
		resume.InitModule,
		insight.InitModule,
		wire.FieldsOf(new(*profile.Module), "Hdl"),
		wire.FieldsOf(new(*job.Module), "Hdl"),
		wire.FieldsOf(new(*skillgap.Module), "Hdl"),
		wire.FieldsOf(new(*careerpath.Module), "Hdl"),
		wire.FieldsOf(new(*recommend.Module), "Hdl"),
		wire.FieldsOf(new(*coach.Module), "Hdl", "CloseIdleJob"),
		wire.FieldsOf(new(*interview.Module), "Hdl"),
		wire.FieldsOf(new(*resume.Module), "Hdl"),
		wire.FieldsOf(new(*insight.Module), "Hdl"),
		InitSession,
		initCronJobs,
		initGinxServer)
	return new(App), nil
}
