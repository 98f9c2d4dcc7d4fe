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
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/domain"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/repository/dao"
)

var ErrAnalysisNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./analysis.go -destination=./mocks/analysis.mock.go -package=repomocks -typed=true AnalysisRepository
type AnalysisRepository interface {
	Create(ctx context.Context, a domain.Analysis) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Analysis, error)
	FindById(ctx context.Context, uid, id int64) (domain.Analysis, error)
}

type analysisRepository struct {
	dao dao.AnalysisDAO
}

func NewAnalysisRepository(d dao.AnalysisDAO) AnalysisRepository {
	return &analysisRepository{dao: d}
}

func (r *analysisRepository) Create(ctx context.Context, a domain.Analysis) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(a))
}

func (r *analysisRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Analysis, error) {
	res, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.SkillGapAnalysis) domain.Analysis {
		return r.toDomain(src)
	}), nil
}

func (r *analysisRepository) FindById(ctx context.Context, uid, id int64) (domain.Analysis, error) {
	res, err := r.dao.FindById(ctx, uid, id)
	if err != nil {
		return domain.Analysis{}, err
	}
	return r.toDomain(res), nil
}

func (r *analysisRepository) toEntity(a domain.Analysis) dao.SkillGapAnalysis {
	return dao.SkillGapAnalysis{
		Uid:                  a.Uid,
		TargetJobTitle:       a.TargetJobTitle,
		TargetJobDescription: a.TargetJobDescription,
		UserSkills:           sqlx.JsonColumn[[]string]{Val: a.UserSkills, Valid: true},
		RequiredSkills:       sqlx.JsonColumn[[]string]{Val: a.RequiredSkills, Valid: true},
		MissingSkills: sqlx.JsonColumn[[]dao.MissingSkill]{
			Val: slice.Map(a.MissingSkills, func(idx int, src domain.MissingSkill) dao.MissingSkill {
				return dao.MissingSkill{
					Skill:      src.Skill,
					Importance: string(src.Importance),
					Resources: slice.Map(src.Resources, func(idx int, src domain.Resource) dao.Resource {
						return dao.Resource{Title: src.Title, URL: src.URL, Type: string(src.Type)}
					}),
				}
			}),
			Valid: true,
		},
		AnalysisReport: a.AnalysisReport,
		IsCompleted:    a.IsCompleted,
	}
}

func (r *analysisRepository) toDomain(a dao.SkillGapAnalysis) domain.Analysis {
	return domain.Analysis{
		ID:                   a.Id,
		Uid:                  a.Uid,
		TargetJobTitle:       a.TargetJobTitle,
		TargetJobDescription: a.TargetJobDescription,
		UserSkills:           a.UserSkills.Val,
		RequiredSkills:       a.RequiredSkills.Val,
		MissingSkills: slice.Map(a.MissingSkills.Val, func(idx int, src dao.MissingSkill) domain.MissingSkill {
			return domain.MissingSkill{
				Skill:      src.Skill,
				Importance: domain.Importance(src.Importance),
				Resources: slice.Map(src.Resources, func(idx int, src dao.Resource) domain.Resource {
					return domain.Resource{Title: src.Title, URL: src.URL, Type: domain.ResourceType(src.Type)}
				}),
			}
		}),
		AnalysisReport: a.AnalysisReport,
		IsCompleted:    a.IsCompleted,
		Ctime:          time.UnixMilli(a.Ctime),
		Utime:          time.UnixMilli(a.Utime),
	}
}
