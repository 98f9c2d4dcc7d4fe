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
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobportal/internal/careerpath"
	"github.com/ecodeclub/jobportal/internal/coach"
	"github.com/ecodeclub/jobportal/internal/insight"
	"github.com/ecodeclub/jobportal/internal/interview"
	"github.com/ecodeclub/jobportal/internal/job"
	"github.com/ecodeclub/jobportal/internal/pkg/middleware"
	"github.com/ecodeclub/jobportal/internal/profile"
	"github.com/ecodeclub/jobportal/internal/recommend"
	"github.com/ecodeclub/jobportal/internal/resume"
	"github.com/ecodeclub/jobportal/internal/skillgap"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	profileHdl *profile.Handler,
	jobHdl *job.Handler,
	skillGapHdl *skillgap.Handler,
	careerPathHdl *careerpath.Handler,
	recommendHdl *recommend.Handler,
	coachHdl *coach.Handler,
	interviewHdl *interview.Handler,
	resumeHdl *resume.Handler,
	insightHdl *insight.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder("jobportal").Build())
	allowedOrigins := econf.GetStringSlice("web.allowedOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range allowedOrigins {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	jobHdl.PublicRoutes(res.Engine)
	resumeHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	profileHdl.PrivateRoutes(res.Engine)
	jobHdl.PrivateRoutes(res.Engine)
	skillGapHdl.PrivateRoutes(res.Engine)
	careerPathHdl.PrivateRoutes(res.Engine)
	recommendHdl.PrivateRoutes(res.Engine)
	coachHdl.PrivateRoutes(res.Engine)
	interviewHdl.PrivateRoutes(res.Engine)
	resumeHdl.PrivateRoutes(res.Engine)
	insightHdl.PrivateRoutes(res.Engine)
	return res
}
