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

	"github.com/ecodeclub/jobportal/internal/profile/internal/domain"
	"github.com/ecodeclub/jobportal/internal/profile/internal/repository"
	repomocks "github.com/ecodeclub/jobportal/internal/profile/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Save(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ProfileRepository
		profile domain.Profile
		wantErr error
	}{
		{
			name: "默认值和技能去重",
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), domain.Profile{
					Uid:    123,
					Skills: []string{"Go", "SQL"},
					PreferredSalary: domain.Salary{
						Min:      1000,
						Max:      2000,
						Currency: domain.DefaultCurrency,
					},
					CoachSettings: domain.CoachSettings{
						CommunicationStyle: domain.CommunicationStyleSupportive,
					},
				}).Return(nil)
				return repo
			},
			profile: domain.Profile{
				Uid:             123,
				Skills:          []string{"Go", " go ", "SQL", ""},
				PreferredSalary: domain.Salary{Min: 1000, Max: 2000},
			},
		},
		{
			name: "沟通风格非法",
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				return repomocks.NewMockProfileRepository(ctrl)
			},
			profile: domain.Profile{
				Uid: 123,
				CoachSettings: domain.CoachSettings{
					CommunicationStyle: "rude",
				},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "薪资区间非法",
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				return repomocks.NewMockProfileRepository(ctrl)
			},
			profile: domain.Profile{
				Uid:             123,
				PreferredSalary: domain.Salary{Min: 2000, Max: 1000},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "存储失败",
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				return repo
			},
			profile: domain.Profile{Uid: 123},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.Save(context.Background(), tc.profile)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			if errors.Is(tc.wantErr, ErrInvalidInput) {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestService_SyncSkills(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockProfileRepository(ctrl)
	repo.EXPECT().UpdateSkills(gomock.Any(), int64(123), []string{"React", "Git"}).Return(nil)
	repo.EXPECT().UpdateSkills(gomock.Any(), int64(456), []string{"Go"}).Return(ErrProfileNotFound)

	svc := NewService(repo)
	skills, err := svc.SyncSkills(context.Background(), 123, []string{"React", "react", "Git"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"React", "Git"}, skills)

	_, err = svc.SyncSkills(context.Background(), 456, []string{"Go"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
