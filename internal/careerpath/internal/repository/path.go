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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/domain"
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/repository/dao"
)

var ErrPathNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./path.go -destination=./mocks/path.mock.go -package=repomocks -typed=true CareerPathRepository
type CareerPathRepository interface {
	Create(ctx context.Context, p domain.CareerPath) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.CareerPath, error)
	FindById(ctx context.Context, uid, id int64) (domain.CareerPath, error)
}

type careerPathRepository struct {
	dao dao.CareerPathDAO
}

func NewCareerPathRepository(d dao.CareerPathDAO) CareerPathRepository {
	return &careerPathRepository{dao: d}
}

func (r *careerPathRepository) Create(ctx context.Context, p domain.CareerPath) (int64, error) {
	return r.dao.Create(ctx, dao.CareerPath{
		Uid:             p.Uid,
		CurrentPosition: p.CurrentPosition,
		TargetPosition:  p.TargetPosition,
		Timeframe:       string(p.Timeframe),
		Milestones: sqlx.JsonColumn[[]dao.Milestone]{
			Val: slice.Map(p.Milestones, func(idx int, src domain.Milestone) dao.Milestone {
				return dao.Milestone{
					Title:               src.Title,
					Description:         src.Description,
					SkillsToAcquire:     src.SkillsToAcquire,
					EstimatedTimeMonths: src.EstimatedTimeMonths,
					Resources: slice.Map(src.Resources, func(idx int, src domain.Resource) dao.Resource {
						return dao.Resource{Title: src.Title, URL: src.URL, Type: string(src.Type)}
					}),
				}
			}),
			Valid: true,
		},
		PathReport:  p.PathReport,
		IsCompleted: p.IsCompleted,
	})
}

func (r *careerPathRepository) FindByUid(ctx context.Context, uid int64) ([]domain.CareerPath, error) {
	res, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.CareerPath) domain.CareerPath {
		return r.toDomain(src)
	}), nil
}

func (r *careerPathRepository) FindById(ctx context.Context, uid, id int64) (domain.CareerPath, error) {
	res, err := r.dao.FindById(ctx, uid, id)
	if err != nil {
		return domain.CareerPath{}, err
	}
	return r.toDomain(res), nil
}

func (r *careerPathRepository) toDomain(p dao.CareerPath) domain.CareerPath {
	return domain.CareerPath{
		ID:              p.Id,
		Uid:             p.Uid,
		CurrentPosition: p.CurrentPosition,
		TargetPosition:  p.TargetPosition,
		Timeframe:       domain.Timeframe(p.Timeframe),
		Milestones: slice.Map(p.Milestones.Val, func(idx int, src dao.Milestone) domain.Milestone {
			return domain.Milestone{
				Title:               src.Title,
				Description:         src.Description,
				SkillsToAcquire:     src.SkillsToAcquire,
				EstimatedTimeMonths: src.EstimatedTimeMonths,
				Resources: slice.Map(src.Resources, func(idx int, src dao.Resource) domain.Resource {
					return domain.Resource{Title: src.Title, URL: src.URL, Type: domain.ResourceType(src.Type)}
				}),
			}
		}),
		PathReport:  p.PathReport,
		IsCompleted: p.IsCompleted,
		Ctime:       time.UnixMilli(p.Ctime),
		Utime:       time.UnixMilli(p.Utime),
	}
}
