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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"github.com/ecodeclub/jobportal/internal/job/internal/repository/dao"
)

var ErrJobNotFound = dao.ErrDataNotFound

type JobRepository interface {
	Create(ctx context.Context, j domain.Job) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, offset, limit int) ([]domain.Job, error)
	Total(ctx context.Context) (int64, error)
	FindBySkills(ctx context.Context, skills []string) ([]domain.Job, error)
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) Create(ctx context.Context, j domain.Job) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(j))
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.dao.FindById(ctx, id)
	return r.toDomain(j), err
}

func (r *jobRepository) List(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.List(ctx, offset, limit)
	return r.toDomains(jobs), err
}

func (r *jobRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *jobRepository) FindBySkills(ctx context.Context, skills []string) ([]domain.Job, error) {
	jobs, err := r.dao.FindBySkills(ctx, skills)
	return r.toDomains(jobs), err
}

func (r *jobRepository) toDomains(jobs []dao.Job) []domain.Job {
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	})
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		ID:           j.Id,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements.Val,
		Location:     j.Location,
		JobType:      j.JobType,
		Salary:       j.Salary,
		Company: domain.Company{
			ID:   j.CompanyId,
			Name: j.CompanyName,
			Logo: j.CompanyLogo,
		},
		Ctime: j.Ctime,
		Utime: j.Utime,
	}
}

func (r *jobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Requirements: sqlx.JsonColumn[[]string]{
			Val:   j.Requirements,
			Valid: true,
		},
		Location:    j.Location,
		JobType:     j.JobType,
		Salary:      j.Salary,
		CompanyId:   j.Company.ID,
		CompanyName: j.Company.Name,
		CompanyLogo: j.Company.Logo,
	}
}
