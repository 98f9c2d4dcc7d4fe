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

	"github.com/ecodeclub/jobportal/internal/job"
	"github.com/ecodeclub/jobportal/internal/profile"
	"github.com/ecodeclub/jobportal/internal/recommend/internal/domain"
)

var ErrProfileNotFound = errors.New("用户资料不存在")

//go:generate mockgen -source=./recommend.go -destination=../../mocks/recommend.mock.go -package=recommendmocks -typed=true Service
type Service interface {
	// Recommend 根据用户资料里的技能给职位打分排序，不落库
	Recommend(ctx context.Context, uid int64) ([]domain.Recommendation, error)
}

type service struct {
	profileSvc profile.Service
	jobSvc     job.Service
}

func NewService(profileSvc profile.Service, jobSvc job.Service) Service {
	return &service{profileSvc: profileSvc, jobSvc: jobSvc}
}

func (s *service) Recommend(ctx context.Context, uid int64) ([]domain.Recommendation, error) {
	p, err := s.profileSvc.Get(ctx, uid)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil, fmt.Errorf("%w uid %d", ErrProfileNotFound, uid)
	}
	if err != nil {
		return nil, err
	}
	scorer := domain.NewScorer(p.Skills)
	if len(scorer.Skills()) == 0 {
		return []domain.Recommendation{}, nil
	}
	jobs, err := s.jobSvc.FindBySkills(ctx, scorer.Skills())
	if err != nil {
		return nil, fmt.Errorf("查找候选职位失败 %w", err)
	}
	return scorer.Rank(jobs), nil
}
