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
	"github.com/ecodeclub/jobportal/internal/resume/internal/domain"
	"github.com/ecodeclub/jobportal/internal/resume/internal/repository/dao"
)

var ErrTemplateNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./resume.go -destination=./mocks/resume.mock.go -package=repomocks -typed=true ResumeRepository
type ResumeRepository interface {
	SaveTemplate(ctx context.Context, t domain.Template) (int64, error)
	ActiveTemplates(ctx context.Context) ([]domain.Template, error)
	FindTemplate(ctx context.Context, id int64) (domain.Template, error)
	CreateResume(ctx context.Context, r domain.Resume) (int64, error)
	FindResumesByUid(ctx context.Context, uid int64) ([]domain.Resume, error)
}

type resumeRepository struct {
	dao dao.ResumeDAO
}

func NewResumeRepository(d dao.ResumeDAO) ResumeRepository {
	return &resumeRepository{dao: d}
}

func (r *resumeRepository) SaveTemplate(ctx context.Context, t domain.Template) (int64, error) {
	return r.dao.SaveTemplate(ctx, dao.ResumeTemplate{
		Id:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		TemplatePath: t.TemplatePath,
		PreviewImage: t.PreviewImage,
		Category:     string(t.Category),
		Active:       t.Active,
	})
}

func (r *resumeRepository) ActiveTemplates(ctx context.Context) ([]domain.Template, error) {
	res, err := r.dao.FindActiveTemplates(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.ResumeTemplate) domain.Template {
		return r.toTemplate(src)
	}), nil
}

func (r *resumeRepository) FindTemplate(ctx context.Context, id int64) (domain.Template, error) {
	res, err := r.dao.FindTemplateById(ctx, id)
	if err != nil {
		return domain.Template{}, err
	}
	return r.toTemplate(res), nil
}

func (r *resumeRepository) CreateResume(ctx context.Context, res domain.Resume) (int64, error) {
	return r.dao.CreateResume(ctx, dao.UserResume{
		Uid:          res.Uid,
		TemplateId:   res.TemplateID,
		TemplateName: res.TemplateName,
		Category:     string(res.Category),
		Content:      sqlx.JsonColumn[map[string]any]{Val: res.Content, Valid: true},
		FileURL:      res.FileURL,
	})
}

func (r *resumeRepository) FindResumesByUid(ctx context.Context, uid int64) ([]domain.Resume, error) {
	res, err := r.dao.FindResumesByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.UserResume) domain.Resume {
		return domain.Resume{
			ID:           src.Id,
			Uid:          src.Uid,
			TemplateID:   src.TemplateId,
			TemplateName: src.TemplateName,
			Category:     domain.Category(src.Category),
			Content:      src.Content.Val,
			FileURL:      src.FileURL,
			Ctime:        time.UnixMilli(src.Ctime),
		}
	}), nil
}

func (r *resumeRepository) toTemplate(t dao.ResumeTemplate) domain.Template {
	return domain.Template{
		ID:           t.Id,
		Name:         t.Name,
		Description:  t.Description,
		TemplatePath: t.TemplatePath,
		PreviewImage: t.PreviewImage,
		Category:     domain.Category(t.Category),
		Active:       t.Active,
		Ctime:        time.UnixMilli(t.Ctime),
		Utime:        time.UnixMilli(t.Utime),
	}
}
