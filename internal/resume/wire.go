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

package resume

import (
	"sync"

	"github.com/ecodeclub/jobportal/internal/resume/internal/repository"
	"github.com/ecodeclub/jobportal/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/jobportal/internal/resume/internal/service"
	"github.com/ecodeclub/jobportal/internal/resume/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, cfg Config) *Module {
	wire.Build(
		initDAO,
		repository.NewResumeRepository,
		initRenderer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.ResumeDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMResumeDAO(db)
}

func initRenderer(cfg Config) service.Renderer {
	return service.NewDocxRenderer(cfg.TemplateDir, cfg.OutputDir, cfg.BaseURL)
}
