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

	"github.com/ecodeclub/jobportal/internal/careerpath/internal/domain"
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/repository"
)

var (
	ErrInvalidInput = errors.New("目标职位不能为空")
	ErrPathNotFound = repository.ErrPathNotFound
)

//go:generate mockgen -source=./path.go -destination=../../mocks/path.mock.go -package=careerpathmocks -typed=true Service
type Service interface {
	// Plan 生成并保存职业路径，生成之后不会再修改
	Plan(ctx context.Context, uid int64, req domain.PlanRequest) (domain.CareerPath, error)
	List(ctx context.Context, uid int64) ([]domain.CareerPath, error)
	Detail(ctx context.Context, uid, id int64) (domain.CareerPath, error)
}

type service struct {
	repo repository.CareerPathRepository
}

func NewService(repo repository.CareerPathRepository) Service {
	return &service{repo: repo}
}

func (s *service) Plan(ctx context.Context, uid int64, req domain.PlanRequest) (domain.CareerPath, error) {
	if strings.TrimSpace(req.TargetPosition) == "" {
		return domain.CareerPath{}, ErrInvalidInput
	}
	timeframe := domain.ParseTimeframe(req.Timeframe)
	now := time.Now()
	p := domain.CareerPath{
		Uid:             uid,
		CurrentPosition: req.CurrentPosition,
		TargetPosition:  req.TargetPosition,
		Timeframe:       timeframe,
		Milestones:      domain.PlanMilestones(req.TargetPosition, timeframe.Months()),
		IsCompleted:     true,
		Ctime:           now,
		Utime:           now,
	}
	p.PathReport = buildReport(p)
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.CareerPath{}, fmt.Errorf("保存职业路径失败 %w", err)
	}
	p.ID = id
	return p, nil
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.CareerPath, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.CareerPath, error) {
	return s.repo.FindById(ctx, uid, id)
}
