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
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobportal/internal/profile"
	"github.com/ecodeclub/jobportal/internal/profile/internal/web"
	"github.com/ecodeclub/jobportal/internal/test"
	testioc "github.com/ecodeclub/jobportal/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 2056

type HandlerTestSuite struct {
	suite.Suite
	server *gin.Engine
	db     *egorm.Component
	cache  ecache.Cache
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.cache = testioc.InitCache()
	module := profile.InitModule(s.db, s.cache)

	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PrivateRoutes(server)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("TRUNCATE TABLE `profiles`").Error
	require.NoError(s.T(), err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = s.cache.Delete(ctx, s.cacheKey())
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) cacheKey() string {
	return "profile:info:2056"
}

func (s *HandlerTestSuite) post(t *testing.T, path string, body any) *http.Request {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	return req
}

func (s *HandlerTestSuite) TestProfile() {
	t := s.T()

	saveRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(saveRecorder, s.post(t, "/profile/save", web.SaveReq{
		Profile: web.Profile{
			Fullname: "Tom",
			Skills:   []string{" Go ", "go", "MySQL"},
		},
	}))
	require.Equal(t, http.StatusOK, saveRecorder.Code)
	assert.Equal(t, 0, saveRecorder.MustScan().Code)

	detailRecorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(detailRecorder, s.post(t, "/profile/detail", nil))
	require.Equal(t, http.StatusOK, detailRecorder.Code)
	p := detailRecorder.MustScan().Data
	assert.Equal(t, "Tom", p.Fullname)
	assert.Equal(t, []string{"Go", "MySQL"}, p.Skills)
	assert.Equal(t, "supportive", p.CoachSettings.CommunicationStyle)

	// 查询之后会回写缓存
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	val := s.cache.Get(ctx, s.cacheKey())
	require.NoError(t, val.Err)

	syncRecorder := test.NewJSONResponseRecorder[web.SyncSkillsResp]()
	s.server.ServeHTTP(syncRecorder, s.post(t, "/profile/skills/sync", web.SyncSkillsReq{
		Skills: []string{"Rust", "rust", "Kafka"},
	}))
	require.Equal(t, http.StatusOK, syncRecorder.Code)
	assert.Equal(t, []string{"Rust", "Kafka"}, syncRecorder.MustScan().Data.Skills)

	// 更新之后缓存被删除
	val = s.cache.Get(ctx, s.cacheKey())
	assert.True(t, val.KeyNotFound())
}

func TestProfileHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
