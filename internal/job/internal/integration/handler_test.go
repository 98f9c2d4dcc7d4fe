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

//go:build e2e

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobportal/internal/job"
	"github.com/ecodeclub/jobportal/internal/job/internal/repository/dao"
	"github.com/ecodeclub/jobportal/internal/job/internal/web"
	"github.com/ecodeclub/jobportal/internal/test"
	testioc "github.com/ecodeclub/jobportal/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

type HandlerTestSuite struct {
	suite.Suite
	server *gin.Engine
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	module := job.InitModule(s.db)

	server := gin.New()
	module.Hdl.PublicRoutes(server)
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PrivateRoutes(server)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `jobs`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSaveAndDetail() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[int64]()
	req, err := http.NewRequest(http.MethodPost, "/job/save", iox.NewJSONReader(web.SaveReq{
		Job: web.Job{
			Title:        "Go Developer",
			Description:  "build services",
			Requirements: []string{"Go", "MySQL"},
			Location:     "Remote",
			JobType:      "full-time",
			Salary:       30000,
			Company:      web.Company{ID: 1, Name: "ecodeclub"},
		},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	id := recorder.MustScan().Data
	require.True(t, id > 0)

	var entity dao.Job
	err = s.db.Where("id = ?", id).First(&entity).Error
	require.NoError(t, err)
	assert.Equal(t, "ecodeclub", entity.CompanyName)
	assert.Equal(t, []string{"Go", "MySQL"}, entity.Requirements.Val)

	detail := test.NewJSONResponseRecorder[web.Job]()
	req, err = http.NewRequest(http.MethodPost, "/job/detail", iox.NewJSONReader(web.IDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	s.server.ServeHTTP(detail, req)
	require.Equal(t, http.StatusOK, detail.Code)
	got := detail.MustScan().Data
	assert.True(t, got.Ctime > 0)
	got.Ctime = 0
	assert.Equal(t, web.Job{
		ID:           id,
		Title:        "Go Developer",
		Description:  "build services",
		Requirements: []string{"Go", "MySQL"},
		Location:     "Remote",
		JobType:      "full-time",
		Salary:       30000,
		Company:      web.Company{ID: 1, Name: "ecodeclub"},
	}, got)
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	for _, title := range []string{"Frontend Engineer", "Product Manager", "UI Designer"} {
		err := s.db.Create(&dao.Job{Title: title, Ctime: 1, Utime: 1}).Error
		require.NoError(t, err)
	}
	body, err := json.Marshal(web.Page{Offset: 1, Limit: 1})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, "/job/list", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.JobList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(t, int64(3), res.Total)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "Product Manager", res.Jobs[0].Title)
}

func TestJobHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
