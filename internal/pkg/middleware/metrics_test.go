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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder_Build(t *testing.T) {
	builder := NewMetricsBuilder("jobportal_test")
	// 重复初始化不会 panic
	again := NewMetricsBuilder("jobportal_test")
	assert.Same(t, builder.counterVec, again.counterVec)

	server := gin.New()
	server.Use(builder.Build())
	server.GET("/job/detail", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	testCases := []struct {
		name       string
		path       string
		wantLabel  string
		wantStatus int
	}{
		{
			name:       "匹配的路由",
			path:       "/job/detail",
			wantLabel:  "/job/detail",
			wantStatus: http.StatusOK,
		},
		{
			name:       "未匹配的路由",
			path:       "/not/exist",
			wantLabel:  "unmatched",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantStatus, recorder.Code)

			counter := builder.counterVec.WithLabelValues(http.MethodGet, tc.wantLabel,
				strconv.Itoa(tc.wantStatus))
			assert.Equal(t, float64(1), testutil.ToFloat64(counter))
		})
	}
}
