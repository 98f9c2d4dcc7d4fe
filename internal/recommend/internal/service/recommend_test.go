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

	"github.com/ecodeclub/jobportal/internal/job"
	jobmocks "github.com/ecodeclub/jobportal/internal/job/mocks"
	"github.com/ecodeclub/jobportal/internal/profile"
	profilemocks "github.com/ecodeclub/jobportal/internal/profile/mocks"
	"github.com/ecodeclub/jobportal/internal/recommend/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var errMockDB = errors.New("mock db error")

func TestService_Recommend(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (profile.Service, job.Service)
		wantRes []domain.Recommendation
		wantErr error
	}{
		{
			name: "技能为空",
			mock: func(ctrl *gomock.Controller) (profile.Service, job.Service) {
				profileSvc := profilemocks.NewMockService(ctrl)
				profileSvc.EXPECT().Get(gomock.Any(), int64(1)).
					Return(profile.Profile{Uid: 1, Skills: []string{" "}}, nil)
				// 不会查询职位
				return profileSvc, jobmocks.NewMockService(ctrl)
			},
			wantRes: []domain.Recommendation{},
		},
		{
			name: "按技能打分",
			mock: func(ctrl *gomock.Controller) (profile.Service, job.Service) {
				profileSvc := profilemocks.NewMockService(ctrl)
				profileSvc.EXPECT().Get(gomock.Any(), int64(1)).
					Return(profile.Profile{Uid: 1, Skills: []string{"Go", "go", "Redis"}}, nil)
				jobSvc := jobmocks.NewMockService(ctrl)
				jobSvc.EXPECT().FindBySkills(gomock.Any(), []string{"Go", "Redis"}).
					Return([]job.Job{
						{ID: 1, Title: "Cache Engineer", Requirements: []string{"redis"}},
						{ID: 2, Title: "Go Engineer", Requirements: []string{"Redis"}},
					}, nil)
				return profileSvc, jobSvc
			},
			wantRes: []domain.Recommendation{
				{Job: job.Job{ID: 2, Title: "Go Engineer", Requirements: []string{"Redis"}}, MatchScore: 100, MatchingSkillsCount: 2},
				{Job: job.Job{ID: 1, Title: "Cache Engineer", Requirements: []string{"redis"}}, MatchScore: 50, MatchingSkillsCount: 1},
			},
		},
		{
			name: "用户资料不存在",
			mock: func(ctrl *gomock.Controller) (profile.Service, job.Service) {
				profileSvc := profilemocks.NewMockService(ctrl)
				profileSvc.EXPECT().Get(gomock.Any(), int64(1)).
					Return(profile.Profile{}, profile.ErrProfileNotFound)
				return profileSvc, jobmocks.NewMockService(ctrl)
			},
			wantErr: ErrProfileNotFound,
		},
		{
			name: "查询职位失败",
			mock: func(ctrl *gomock.Controller) (profile.Service, job.Service) {
				profileSvc := profilemocks.NewMockService(ctrl)
				profileSvc.EXPECT().Get(gomock.Any(), int64(1)).
					Return(profile.Profile{Uid: 1, Skills: []string{"Go"}}, nil)
				jobSvc := jobmocks.NewMockService(ctrl)
				jobSvc.EXPECT().FindBySkills(gomock.Any(), []string{"Go"}).
					Return(nil, errMockDB)
				return profileSvc, jobSvc
			},
			wantErr: errMockDB,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			res, err := svc.Recommend(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
