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

	"github.com/ecodeclub/jobportal/internal/profile/internal/domain"
	"github.com/ecodeclub/jobportal/internal/profile/internal/repository"
)

var (
	ErrProfileNotFound = repository.ErrProfileNotFound
	ErrInvalidInput    = errors.New("个人资料参数非法")
)

//go:generate mockgen -source=./profile.go -destination=../../mocks/profile.mock.go -package=profilemocks -typed=true Service
type Service interface {
	// Get 不存在的时候返回 ErrProfileNotFound
	Get(ctx context.Context, uid int64) (domain.Profile, error)
	Save(ctx context.Context, p domain.Profile) error
	// SyncSkills 用 skills 整体替换掉个人资料里面的技能
	SyncSkills(ctx context.Context, uid int64, skills []string) ([]string, error)
}

type service struct {
	repo repository.ProfileRepository
}

func NewService(repo repository.ProfileRepository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, uid int64) (domain.Profile, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Save(ctx context.Context, p domain.Profile) error {
	if p.CoachSettings.CommunicationStyle == "" {
		p.CoachSettings.CommunicationStyle = domain.CommunicationStyleSupportive
	}
	if !p.CoachSettings.CommunicationStyle.Valid() {
		return fmt.Errorf("%w: 沟通风格 %s", ErrInvalidInput, p.CoachSettings.CommunicationStyle)
	}
	if p.PreferredSalary.Min < 0 || (p.PreferredSalary.Max > 0 && p.PreferredSalary.Max < p.PreferredSalary.Min) {
		return fmt.Errorf("%w: 期望薪资 [%d, %d]", ErrInvalidInput, p.PreferredSalary.Min, p.PreferredSalary.Max)
	}
	if p.PreferredSalary.Currency == "" {
		p.PreferredSalary.Currency = domain.DefaultCurrency
	}
	p.Skills = domain.NormalizeSkills(p.Skills)
	return s.repo.Save(ctx, p)
}

func (s *service) SyncSkills(ctx context.Context, uid int64, skills []string) ([]string, error) {
	skills = domain.NormalizeSkills(skills)
	err := s.repo.UpdateSkills(ctx, uid, skills)
	return skills, err
}
