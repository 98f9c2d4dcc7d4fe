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
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecodeclub/jobportal/internal/resume/internal/domain"
	"github.com/ecodeclub/jobportal/internal/resume/internal/repository"
	repomocks "github.com/ecodeclub/jobportal/internal/resume/internal/repository/mocks"
	svcmocks "github.com/ecodeclub/jobportal/internal/resume/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errMockDB = errors.New("mock db error")

func TestService_Generate(t *testing.T) {
	tpl := domain.Template{ID: 1, Name: "Modern", TemplatePath: "tpl.docx", Category: domain.CategoryCreative, Active: true}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.ResumeRepository, Renderer)
		wantURL string
		wantErr error
	}{
		{
			name: "生成成功",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Renderer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindTemplate(gomock.Any(), int64(1)).Return(tpl, nil)
				repo.EXPECT().CreateResume(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Resume) (int64, error) {
						assert.Equal(t, "https://example.com/resume_1.docx", r.FileURL)
						assert.Equal(t, "Modern", r.TemplateName)
						return 9, nil
					})
				renderer := svcmocks.NewMockRenderer(ctrl)
				renderer.EXPECT().Render(gomock.Any(), tpl, gomock.Any()).
					DoAndReturn(func(ctx context.Context, tpl domain.Template, r domain.Resume) (string, error) {
						assert.Equal(t, "Tom", r.Content["fullName"])
						assert.Contains(t, r.Content, domain.GeneratedAtKey)
						return "https://example.com/resume_1.docx", nil
					})
				return repo, renderer
			},
			wantURL: "https://example.com/resume_1.docx",
		},
		{
			name: "模板不存在",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Renderer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindTemplate(gomock.Any(), int64(1)).Return(domain.Template{}, repository.ErrTemplateNotFound)
				return repo, svcmocks.NewMockRenderer(ctrl)
			},
			wantErr: ErrTemplateNotFound,
		},
		{
			name: "模板已经下线",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Renderer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				inactive := tpl
				inactive.Active = false
				repo.EXPECT().FindTemplate(gomock.Any(), int64(1)).Return(inactive, nil)
				return repo, svcmocks.NewMockRenderer(ctrl)
			},
			wantErr: ErrTemplateNotFound,
		},
		{
			name: "保存失败",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Renderer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindTemplate(gomock.Any(), int64(1)).Return(tpl, nil)
				repo.EXPECT().CreateResume(gomock.Any(), gomock.Any()).Return(int64(0), errMockDB)
				renderer := svcmocks.NewMockRenderer(ctrl)
				renderer.EXPECT().Render(gomock.Any(), tpl, gomock.Any()).Return("url", nil)
				// 没保存成功的文件要删掉
				renderer.EXPECT().Remove(gomock.Any(), "url").Return(nil)
				return repo, renderer
			},
			wantErr: errMockDB,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			r, err := svc.Generate(context.Background(), 1, 1, map[string]any{"fullName": "Tom"})
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, int64(9), r.ID)
			assert.Equal(t, tc.wantURL, r.FileURL)
		})
	}
}

func TestService_SaveTemplate(t *testing.T) {
	testCases := []struct {
		name    string
		tpl     domain.Template
		mock    func(ctrl *gomock.Controller) (repository.ResumeRepository, Renderer)
		wantId  int64
		wantErr error
	}{
		{
			name: "保存成功",
			tpl: domain.Template{
				Name:         " Classic ",
				TemplatePath: "classic.docx",
				Category:     "unknown",
				Active:       true,
			},
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Renderer) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().SaveTemplate(gomock.Any(), domain.Template{
					Name:         "Classic",
					TemplatePath: "classic.docx",
					Category:     domain.CategoryProfessional,
					Active:       true,
				}).Return(int64(2), nil)
				renderer := svcmocks.NewMockRenderer(ctrl)
				renderer.EXPECT().CheckTemplate("classic.docx").Return(nil)
				return repo, renderer
			},
			wantId: 2,
		},
		{
			name: "没有路径",
			tpl:  domain.Template{Name: "no path"},
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Renderer) {
				return repomocks.NewMockResumeRepository(ctrl), svcmocks.NewMockRenderer(ctrl)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "路径不在模板目录下",
			tpl:  domain.Template{Name: "passwd", TemplatePath: "/etc/passwd"},
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Renderer) {
				renderer := svcmocks.NewMockRenderer(ctrl)
				renderer.EXPECT().CheckTemplate("/etc/passwd").Return(ErrTemplateOutsideDir)
				return repomocks.NewMockResumeRepository(ctrl), renderer
			},
			wantErr: ErrInvalidInput,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			id, err := svc.SaveTemplate(context.Background(), tc.tpl)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	res := placeholders(map[string]any{
		"fullName":   "Tom",
		"age":        float64(30),
		"skills":     []any{"Go", "SQL"},
		"contact":    map[string]any{"phone": "123", "email": "tom@example.com"},
		"nothing":    nil,
		"isEmployed": true,
	})
	assert.Equal(t, "Tom", res["fullName"])
	assert.Equal(t, "30", res["age"])
	assert.Equal(t, "Go\nSQL", res["skills"])
	assert.Equal(t, "email: tom@example.com, phone: 123", res["contact"])
	assert.Equal(t, "", res["nothing"])
	assert.Equal(t, "true", res["isEmployed"])
}

func TestDocxRenderer_Render(t *testing.T) {
	r := NewDocxRenderer(t.TempDir(), t.TempDir(), "https://example.com/")
	_, err := r.Render(context.Background(), domain.Template{TemplatePath: "not-exist.docx"}, domain.Resume{})
	assert.Error(t, err)
	_, err = r.Render(context.Background(), domain.Template{TemplatePath: "../outside.docx"}, domain.Resume{})
	assert.ErrorIs(t, err, ErrTemplateOutsideDir)
}

func TestDocxRenderer_CheckTemplate(t *testing.T) {
	dir := t.TempDir()
	r := NewDocxRenderer(dir, t.TempDir(), "/generated")
	testCases := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name: "相对路径",
			path: "modern/resume.docx",
		},
		{
			name: "模板目录下的绝对路径",
			path: filepath.Join(dir, "classic.docx"),
		},
		{
			name:    "跳出模板目录",
			path:    "../../etc/passwd",
			wantErr: ErrTemplateOutsideDir,
		},
		{
			name:    "其它目录的绝对路径",
			path:    "/etc/passwd",
			wantErr: ErrTemplateOutsideDir,
		},
		{
			name:    "前缀相同的兄弟目录",
			path:    dir + "-other/x.docx",
			wantErr: ErrTemplateOutsideDir,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, r.CheckTemplate(tc.path), tc.wantErr)
		})
	}
}

func TestDocxRenderer_Remove(t *testing.T) {
	outputDir := t.TempDir()
	r := NewDocxRenderer(t.TempDir(), outputDir, "/generated/")
	file := filepath.Join(outputDir, "resume_1_1.docx")
	require.NoError(t, os.WriteFile(file, []byte("docx"), 0o644))

	require.NoError(t, r.Remove(context.Background(), "/generated/resume_1_1.docx"))
	_, err := os.Stat(file)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	// 已经不存在的文件不算错误
	assert.NoError(t, r.Remove(context.Background(), "/generated/resume_1_1.docx"))
}
