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

	"github.com/ecodeclub/jobportal/internal/resume/internal/domain"
	"github.com/ecodeclub/jobportal/internal/resume/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrInvalidInput     = errors.New("参数错误")
	ErrTemplateNotFound = repository.ErrTemplateNotFound
)

//go:generate mockgen -source=./resume.go -destination=../../mocks/resume.mock.go -package=resumemocks -typed=true Service
type Service interface {
	// Templates 返回所有启用的模板
	Templates(ctx context.Context) ([]domain.Template, error)
	SaveTemplate(ctx context.Context, t domain.Template) (int64, error)
	Generate(ctx context.Context, uid, templateID int64, data map[string]any) (domain.Resume, error)
	List(ctx context.Context, uid int64) ([]domain.Resume, error)
}

type service struct {
	repo     repository.ResumeRepository
	renderer Renderer
	logger   *elog.Component
}

func NewService(repo repository.ResumeRepository, renderer Renderer) Service {
	return &service{repo: repo, renderer: renderer, logger: elog.DefaultLogger}
}

func (s *service) Templates(ctx context.Context) ([]domain.Template, error) {
	return s.repo.ActiveTemplates(ctx)
}

func (s *service) SaveTemplate(ctx context.Context, t domain.Template) (int64, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" || t.TemplatePath == "" {
		return 0, fmt.Errorf("%w 模板名称和路径不能为空", ErrInvalidInput)
	}
	if err := s.renderer.CheckTemplate(t.TemplatePath); err != nil {
		return 0, fmt.Errorf("%w %w", ErrInvalidInput, err)
	}
	t.Category = domain.ParseCategory(string(t.Category))
	return s.repo.SaveTemplate(ctx, t)
}

func (s *service) Generate(ctx context.Context, uid, templateID int64, data map[string]any) (domain.Resume, error) {
	tpl, err := s.repo.FindTemplate(ctx, templateID)
	if err != nil {
		return domain.Resume{}, err
	}
	if !tpl.Active {
		return domain.Resume{}, fmt.Errorf("%w 模板已经下线 %d", ErrTemplateNotFound, templateID)
	}

	now := time.Now()
	r := domain.Resume{
		Uid:          uid,
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		Category:     tpl.Category,
		Content:      domain.NewContent(data, now),
		Ctime:        now,
	}
	r.FileURL, err = s.renderer.Render(ctx, tpl, r)
	if err != nil {
		return domain.Resume{}, fmt.Errorf("渲染简历失败 %w", err)
	}
	r.ID, err = s.repo.CreateResume(ctx, r)
	if err != nil {
		if rerr := s.renderer.Remove(ctx, r.FileURL); rerr != nil {
			s.logger.Error("删除未保存的简历文件失败",
				elog.FieldErr(rerr),
				elog.String("fileURL", r.FileURL))
		}
		return domain.Resume{}, fmt.Errorf("保存简历失败 %w", err)
	}
	return r, nil
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Resume, error) {
	return s.repo.FindResumesByUid(ctx, uid)
}
