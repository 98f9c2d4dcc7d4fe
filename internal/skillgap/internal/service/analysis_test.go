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

	"github.com/ecodeclub/jobportal/internal/skillgap/internal/domain"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/repository"
	repomocks "github.com/ecodeclub/jobportal/internal/skillgap/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Analyze(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.AnalysisRepository
		req  domain.AnalysisRequest

		wantErr      error
		wantRequired []string
		wantMissing  []domain.MissingSkill
		wantReport   []string
	}{
		{
			name: "前端开发",
			mock: func(ctrl *gomock.Controller) repository.AnalysisRepository {
				repo := repomocks.NewMockAnalysisRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a domain.Analysis) (int64, error) {
						assert.Equal(t, int64(123), a.Uid)
						assert.True(t, a.IsCompleted)
						return 1, nil
					})
				return repo
			},
			req: domain.AnalysisRequest{
				TargetJobTitle: "Senior Frontend Developer",
				UserSkills:     []string{"JavaScript", "react"},
			},
			wantRequired: []string{"JavaScript", "React", "Node.js", "SQL", "Git", "Problem Solving", "Communication"},
			wantMissing: []domain.MissingSkill{
				missingSkill("Node.js", "node.js"),
				missingSkill("SQL", "sql"),
				missingSkill("Git", "git"),
				missingSkill("Problem Solving", "problem-solving"),
				missingSkill("Communication", "communication"),
			},
			wantReport: []string{
				"# Skill Gap Analysis for Senior Frontend Developer",
				"## Your Current Skills\nJavaScript, react",
				"## Required Skills for Senior Frontend Developer\nJavaScript, React, Node.js, SQL, Git, Problem Solving, Communication",
				"- Node.js (critical)\n- SQL (critical)\n- Git (critical)\n- Problem Solving (critical)\n- Communication (critical)",
				"## Recommendations",
			},
		},
		{
			name: "全部掌握",
			mock: func(ctrl *gomock.Controller) repository.AnalysisRepository {
				repo := repomocks.NewMockAnalysisRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
				return repo
			},
			req: domain.AnalysisRequest{
				TargetJobTitle: "UX Designer",
				UserSkills: []string{"figma", "adobe xd", "ui/ux", "typography",
					"color theory", "wireframing", "prototyping"},
			},
			wantRequired: []string{"Figma", "Adobe XD", "UI/UX", "Typography", "Color Theory", "Wireframing", "Prototyping"},
			wantMissing:  []domain.MissingSkill{},
			wantReport:   []string{"## Missing Skills\n\n## Recommendations"},
		},
		{
			name: "没有技能",
			mock: func(ctrl *gomock.Controller) repository.AnalysisRepository {
				repo := repomocks.NewMockAnalysisRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				return repo
			},
			req: domain.AnalysisRequest{
				TargetJobTitle: "Store Manager",
			},
			wantRequired: []string{"Leadership", "Project Management", "Communication", "Strategic Planning",
				"Team Building", "Conflict Resolution", "Budgeting"},
			wantMissing: []domain.MissingSkill{
				missingSkill("Leadership", "leadership"),
				missingSkill("Project Management", "project-management"),
				missingSkill("Communication", "communication"),
				missingSkill("Strategic Planning", "strategic-planning"),
				missingSkill("Team Building", "team-building"),
				missingSkill("Conflict Resolution", "conflict-resolution"),
				missingSkill("Budgeting", "budgeting"),
			},
			wantReport: []string{"## Your Current Skills\n\n"},
		},
		{
			name: "目标职位为空",
			mock: func(ctrl *gomock.Controller) repository.AnalysisRepository {
				return repomocks.NewMockAnalysisRepository(ctrl)
			},
			req: domain.AnalysisRequest{
				TargetJobTitle: "   ",
				UserSkills:     []string{"Go"},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "存储失败",
			mock: func(ctrl *gomock.Controller) repository.AnalysisRepository {
				repo := repomocks.NewMockAnalysisRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errMockDB)
				return repo
			},
			req: domain.AnalysisRequest{
				TargetJobTitle: "Engineer",
			},
			wantErr: errMockDB,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), domain.Config{}).(*service)
			svc.importance = func(skill string) domain.Importance {
				return domain.ImportanceCritical
			}
			a, err := svc.Analyze(context.Background(), 123, tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, a.ID)
			assert.Equal(t, tc.wantRequired, a.RequiredSkills)
			assert.Equal(t, tc.wantMissing, a.MissingSkills)
			for _, part := range tc.wantReport {
				assert.Contains(t, a.AnalysisReport, part)
			}
		})
	}
}

func TestService_AnalyzeImportance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockAnalysisRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()
	svc := NewService(repo, domain.Config{})
	for i := 0; i < 20; i++ {
		a, err := svc.Analyze(context.Background(), 123, domain.AnalysisRequest{TargetJobTitle: "Accountant"})
		require.NoError(t, err)
		require.Len(t, a.MissingSkills, 7)
		for _, m := range a.MissingSkills {
			assert.True(t, m.Importance.Valid())
		}
	}
}

func TestService_CustomConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockAnalysisRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	svc := NewService(repo, domain.Config{
		ResourceBaseURL: "https://learn.example.org/",
		Taxonomy: domain.Taxonomy{
			Buckets: []domain.Bucket{{Keywords: []string{"gopher"}, Skills: []string{"Go", "Distributed Systems"}}},
			Default: []string{"Communication"},
		},
	})
	a, err := svc.Analyze(context.Background(), 123, domain.AnalysisRequest{
		TargetJobTitle: "Chief Gopher",
		UserSkills:     []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Distributed Systems"}, a.RequiredSkills)
	assert.Equal(t, []string{"Go"}, a.MatchingSkills())
	require.Len(t, a.MissingSkills, 1)
	assert.Equal(t, "https://learn.example.org/courses/distributed-systems", a.MissingSkills[0].Resources[0].URL)
}

func TestService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockAnalysisRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(123), int64(9)).Return(domain.Analysis{}, repository.ErrAnalysisNotFound)
	svc := NewService(repo, domain.Config{})
	_, err := svc.Detail(context.Background(), 123, 9)
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}

var errMockDB = errors.New("mock db error")

func missingSkill(skill, slug string) domain.MissingSkill {
	return domain.MissingSkill{
		Skill:      skill,
		Importance: domain.ImportanceCritical,
		Resources: []domain.Resource{
			{
				Title: "Learn " + skill + " - Online Course",
				URL:   "https://example.com/courses/" + slug,
				Type:  domain.ResourceTypeCourse,
			},
			{
				Title: skill + " for Beginners - Article",
				URL:   "https://example.com/articles/" + slug,
				Type:  domain.ResourceTypeArticle,
			},
		},
	}
}
