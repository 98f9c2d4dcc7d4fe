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

	"github.com/ecodeclub/jobportal/internal/careerpath"
	careerpathmocks "github.com/ecodeclub/jobportal/internal/careerpath/mocks"
	"github.com/ecodeclub/jobportal/internal/insight/internal/domain"
	"github.com/ecodeclub/jobportal/internal/interview"
	interviewmocks "github.com/ecodeclub/jobportal/internal/interview/mocks"
	"github.com/ecodeclub/jobportal/internal/profile"
	profilemocks "github.com/ecodeclub/jobportal/internal/profile/mocks"
	"github.com/ecodeclub/jobportal/internal/resume"
	resumemocks "github.com/ecodeclub/jobportal/internal/resume/mocks"
	"github.com/ecodeclub/jobportal/internal/skillgap"
	skillgapmocks "github.com/ecodeclub/jobportal/internal/skillgap/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	profile    *profilemocks.MockService
	skillGap   *skillgapmocks.MockService
	careerPath *careerpathmocks.MockService
	interview  *interviewmocks.MockService
	resume     *resumemocks.MockService
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		profile:    profilemocks.NewMockService(ctrl),
		skillGap:   skillgapmocks.NewMockService(ctrl),
		careerPath: careerpathmocks.NewMockService(ctrl),
		interview:  interviewmocks.NewMockService(ctrl),
		resume:     resumemocks.NewMockService(ctrl),
	}
}

func (m mocks) service() Service {
	return NewService(m.profile, m.skillGap, m.careerPath, m.interview, m.resume)
}

func TestService_Suggestions(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		want    []string
		wantErr error
	}{
		{
			name: "汇总各个功能的技能",
			mock: func(m mocks) {
				m.profile.EXPECT().Get(gomock.Any(), int64(1)).
					Return(profile.Profile{Uid: 1, Skills: []string{"Go"}}, nil)
				m.skillGap.EXPECT().List(gomock.Any(), int64(1)).
					Return([]skillgap.Analysis{{RequiredSkills: []string{"go", "Redis"}}}, nil)
				m.careerPath.EXPECT().List(gomock.Any(), int64(1)).
					Return([]careerpath.CareerPath{{Milestones: []careerpath.Milestone{
						{SkillsToAcquire: []string{"Kafka", "redis"}},
					}}}, nil)
				m.interview.EXPECT().List(gomock.Any(), int64(1)).Return([]interview.Interview{}, nil)
				m.resume.EXPECT().List(gomock.Any(), int64(1)).
					Return([]resume.Resume{{Content: map[string]any{"skills": []any{"Docker", 1}}}}, nil)
			},
			want: []string{"Docker", "Kafka", "redis"},
		},
		{
			name: "没有个人资料",
			mock: func(m mocks) {
				m.profile.EXPECT().Get(gomock.Any(), int64(1)).
					Return(profile.Profile{}, profile.ErrProfileNotFound)
				m.skillGap.EXPECT().List(gomock.Any(), int64(1)).
					Return([]skillgap.Analysis{{RequiredSkills: []string{"Go"}}}, nil)
				m.careerPath.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
				m.interview.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
				m.resume.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
			},
			want: []string{"Go"},
		},
		{
			name: "查询失败",
			mock: func(m mocks) {
				m.profile.EXPECT().Get(gomock.Any(), int64(1)).Return(profile.Profile{}, nil)
				m.skillGap.EXPECT().List(gomock.Any(), int64(1)).Return(nil, errMockDB)
				m.careerPath.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
				m.interview.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
				m.resume.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
			},
			wantErr: errMockDB,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			res, err := m.service().Suggestions(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestService_NextSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.profile.EXPECT().Get(gomock.Any(), int64(1)).
		Return(profile.Profile{Uid: 1, Skills: []string{"Go"}}, nil)
	m.skillGap.EXPECT().List(gomock.Any(), int64(1)).Return([]skillgap.Analysis{{ID: 1}}, nil)
	m.careerPath.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
	m.interview.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
	m.resume.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)

	res, err := m.service().NextSteps(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, domain.FeatureCareerPath, res[0].Feature)
	assert.Equal(t, domain.FeatureResume, res[1].Feature)
}

var errMockDB = errors.New("mock db error")
