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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/domain"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/repository"
)

const defaultResourceBaseURL = "https://example.com"

var (
	ErrInvalidInput     = errors.New("目标职位不能为空")
	ErrAnalysisNotFound = repository.ErrAnalysisNotFound
)

//go:generate mockgen -source=./analysis.go -destination=../../mocks/analysis.mock.go -package=skillgapmocks -typed=true Service
type Service interface {
	// Analyze 生成并保存一份技能差距分析，结果生成之后就不会再变化
	Analyze(ctx context.Context, uid int64, req domain.AnalysisRequest) (domain.Analysis, error)
	// List 按照创建时间倒序
	List(ctx context.Context, uid int64) ([]domain.Analysis, error)
	Detail(ctx context.Context, uid, id int64) (domain.Analysis, error)
}

type service struct {
	repo            repository.AnalysisRepository
	taxonomy        domain.Taxonomy
	resourceBaseURL string
	importance      ImportanceFunc
}

func NewService(repo repository.AnalysisRepository, cfg domain.Config) Service {
	taxonomy := cfg.Taxonomy
	if taxonomy.IsZero() {
		taxonomy = domain.DefaultTaxonomy()
	}
	baseURL := strings.TrimSuffix(cfg.ResourceBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultResourceBaseURL
	}
	return &service{
		repo:            repo,
		taxonomy:        taxonomy,
		resourceBaseURL: baseURL,
		importance:      randomImportance,
	}
}

func (s *service) Analyze(ctx context.Context, uid int64, req domain.AnalysisRequest) (domain.Analysis, error) {
	title := strings.TrimSpace(req.TargetJobTitle)
	if title == "" {
		return domain.Analysis{}, ErrInvalidInput
	}
	userSkills := req.UserSkills
	if userSkills == nil {
		userSkills = []string{}
	}
	required := s.taxonomy.RequiredSkills(title)
	_, missing := domain.Diff(required, userSkills)
	a := domain.Analysis{
		Uid: uid,
		// 报告和存储里面都保留用户的原始输入
		TargetJobTitle:       req.TargetJobTitle,
		TargetJobDescription: req.TargetJobDescription,
		UserSkills:           userSkills,
		RequiredSkills:       required,
		MissingSkills: slice.Map(missing, func(idx int, src string) domain.MissingSkill {
			return domain.MissingSkill{
				Skill:      src,
				Importance: s.importance(src),
				Resources:  s.resources(src),
			}
		}),
		IsCompleted: true,
	}
	now := time.Now()
	a.Ctime, a.Utime = now, now
	a.AnalysisReport = buildReport(a)
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("保存技能差距分析失败 %w", err)
	}
	a.ID = id
	return a, nil
}

func (s *service) resources(skill string) []domain.Resource {
	slug := domain.Slug(skill)
	return []domain.Resource{
		{
			Title: fmt.Sprintf("Learn %s - Online Course", skill),
			URL:   fmt.Sprintf("%s/courses/%s", s.resourceBaseURL, slug),
			Type:  domain.ResourceTypeCourse,
		},
		{
			Title: fmt.Sprintf("%s for Beginners - Article", skill),
			URL:   fmt.Sprintf("%s/articles/%s", s.resourceBaseURL, slug),
			Type:  domain.ResourceTypeArticle,
		},
	}
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Analysis, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Analysis, error) {
	return s.repo.FindById(ctx, uid, id)
}
