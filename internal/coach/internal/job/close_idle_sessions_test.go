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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	coachmocks "github.com/ecodeclub/jobportal/internal/coach/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCloseIdleSessionsJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		wantErr string
	}{
		{name: "关闭成功"},
		{name: "关闭失败", err: errors.New("mock db error"), wantErr: "关闭空闲会话失败: mock db error"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := coachmocks.NewMockService(ctrl)
			start := time.Now()
			svc.EXPECT().CloseIdle(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, before time.Time) (int64, error) {
					// 截止时间大约是半小时之前
					assert.WithinDuration(t, start.Add(-30*time.Minute), before, time.Second)
					return 1, tc.err
				})
			err := NewCloseIdleSessionsJob(svc, 30*time.Minute).Run(context.Background())
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}
