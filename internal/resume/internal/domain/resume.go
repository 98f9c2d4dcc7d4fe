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

package domain

import "time"

type Category string

const (
	CategoryProfessional Category = "professional"
	CategoryCreative     Category = "creative"
	CategoryAcademic     Category = "academic"
	CategoryEntryLevel   Category = "entry_level"
	CategoryExecutive    Category = "executive"
)

// ParseCategory 未知分类按照 professional 处理
func ParseCategory(s string) Category {
	switch c := Category(s); c {
	case CategoryCreative, CategoryAcademic, CategoryEntryLevel, CategoryExecutive:
		return c
	default:
		return CategoryProfessional
	}
}

// GeneratedAtKey 生成简历时写入内容里的时间字段
const GeneratedAtKey = "generatedAt"

type Template struct {
	ID          int64
	Name        string
	Description string
	// TemplatePath docx 模板文件的路径，模板里面使用 {key} 作为占位符
	TemplatePath string
	PreviewImage string
	Category     Category
	Active       bool
	Ctime        time.Time
	Utime        time.Time
}

type Resume struct {
	ID           int64
	Uid          int64
	TemplateID   int64
	TemplateName string
	Category     Category
	Content      map[string]any
	// FileURL 生成的简历文件的访问地址
	FileURL string
	Ctime   time.Time
}

// NewContent 复制用户提交的内容，并且加上生成时间
func NewContent(data map[string]any, now time.Time) map[string]any {
	res := make(map[string]any, len(data)+1)
	for k, v := range data {
		res[k] = v
	}
	res[GeneratedAtKey] = now.Format(time.RFC3339)
	return res
}
