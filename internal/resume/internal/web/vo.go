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

package web

import "github.com/ecodeclub/jobportal/internal/resume/internal/domain"

type Template struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	TemplatePath string `json:"templatePath,omitempty"`
	PreviewImage string `json:"previewImage"`
	Category     string `json:"category"`
	Active       bool   `json:"active"`
}

type SaveTemplateReq struct {
	Template Template `json:"template"`
}

type GenerateReq struct {
	TemplateID int64          `json:"templateId"`
	UserData   map[string]any `json:"userData"`
}

type Resume struct {
	ID              int64          `json:"id"`
	TemplateID      int64          `json:"templateId"`
	TemplateName    string         `json:"templateName"`
	Category        string         `json:"category"`
	Content         map[string]any `json:"content"`
	GeneratedResume string         `json:"generatedResume"`
	Ctime           int64          `json:"ctime"`
}

func newTemplate(t domain.Template) Template {
	return Template{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		PreviewImage: t.PreviewImage,
		Category:     string(t.Category),
		Active:       t.Active,
	}
}

func (t Template) toDomain() domain.Template {
	return domain.Template{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		TemplatePath: t.TemplatePath,
		PreviewImage: t.PreviewImage,
		Category:     domain.Category(t.Category),
		Active:       t.Active,
	}
}

func newResume(r domain.Resume) Resume {
	return Resume{
		ID:              r.ID,
		TemplateID:      r.TemplateID,
		TemplateName:    r.TemplateName,
		Category:        string(r.Category),
		Content:         r.Content,
		GeneratedResume: r.FileURL,
		Ctime:           r.Ctime.UnixMilli(),
	}
}
