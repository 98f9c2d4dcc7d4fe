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
	"strings"

	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"github.com/ecodeclub/jobportal/internal/job/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound  = repository.ErrJobNotFound
	ErrInvalidInput = errors.New("职位参数非法")
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks -typed=true Service
type Service interface {
	Create(ctx context.Context, j domain.Job) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	Detail(ctx context.Context, id int64) (domain.Job, error)
	// FindBySkills 按照 id 升序返回命中任意一个技能的职位，skills 为空的时候返回空列表
	FindBySkills(ctx context.Context, skills []string) ([]domain.Job, error)
}

type service struct {
	repo repository.JobRepository
}

func NewService(repo repository.JobRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, j domain.Job) (int64, error) {
	j.Title = strings.TrimSpace(j.Title)
	if j.Title == "" {
		return 0, ErrInvalidInput
	}
	return s.repo.Create(ctx, j)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) FindBySkills(ctx context.Context, skills []string) ([]domain.Job, error) {
	return s.repo.FindBySkills(ctx, skills)
}
