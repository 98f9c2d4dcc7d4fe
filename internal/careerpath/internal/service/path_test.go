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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/jobportal/internal/careerpath/internal/domain"
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/repository"
	repomocks "github.com/ecodeclub/jobportal/internal/careerpath/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Plan(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.CareerPathRepository
		req  domain.PlanRequest

		wantErr       error
		wantTimeframe domain.Timeframe
		wantMonths    []int
		wantReport    []string
	}{
		{
			name: "长期规划",
			mock: func(ctrl *gomock.Controller) repository.CareerPathRepository {
				repo := repomocks.NewMockCareerPathRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.CareerPath) (int64, error) {
						assert.Equal(t, int64(123), p.Uid)
						assert.True(t, p.IsCompleted)
						assert.NotEmpty(t, p.PathReport)
						return 1, nil
					})
				return repo
			},
			req: domain.PlanRequest{
				CurrentPosition: "Junior Developer",
				TargetPosition:  "Engineering Manager",
				Timeframe:       "long_term",
			},
			wantTimeframe: domain.TimeframeLongTerm,
			wantMonths:    []int{12, 12, 12, 12, 12},
			wantReport: []string{
				"# Career Path: Junior Developer to Engineering Manager",
				"from Junior Developer to Engineering Manager over a long term period.",
				"### Milestone 1: Step 1 towards Engineering Manager",
				"### Milestone 5: Engineering Manager",
				"- Skill 13 for Engineering Manager\n- Skill 14 for Engineering Manager\n- Skill 15 for Engineering Manager",
				"**Estimated Time:** 12 months",
				"## Recommendations",
			},
		},
		{
			name: "不认识的时间范围当作 mid_term",
			mock: func(ctrl *gomock.Controller) repository.CareerPathRepository {
				repo := repomocks.NewMockCareerPathRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.CareerPath) (int64, error) {
						assert.Equal(t, domain.TimeframeMidTerm, p.Timeframe)
						return 2, nil
					})
				return repo
			},
			req: domain.PlanRequest{
				CurrentPosition: "Analyst",
				TargetPosition:  "Data Scientist",
				Timeframe:       "someday",
			},
			wantTimeframe: domain.TimeframeMidTerm,
			wantMonths:    []int{12, 12, 12},
			wantReport:    []string{"over a mid term period."},
		},
		{
			name: "目标职位为空",
			mock: func(ctrl *gomock.Controller) repository.CareerPathRepository {
				return repomocks.NewMockCareerPathRepository(ctrl)
			},
			req:     domain.PlanRequest{CurrentPosition: "Analyst"},
			wantErr: ErrInvalidInput,
		},
		{
			name: "存储失败",
			mock: func(ctrl *gomock.Controller) repository.CareerPathRepository {
				repo := repomocks.NewMockCareerPathRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errMockDB)
				return repo
			},
			req:     domain.PlanRequest{TargetPosition: "CTO"},
			wantErr: errMockDB,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			p, err := svc.Plan(context.Background(), 123, tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, p.ID)
			assert.Equal(t, tc.wantTimeframe, p.Timeframe)
			require.Len(t, p.Milestones, len(tc.wantMonths))
			for i, m := range p.Milestones {
				assert.Equal(t, tc.wantMonths[i], m.EstimatedTimeMonths)
			}
			assert.Equal(t, tc.wantTimeframe.Months(), p.TotalMonths())
			for _, part := range tc.wantReport {
				assert.Contains(t, p.PathReport, part)
			}
		})
	}
}

var errMockDB = errors.New("mock db error")
