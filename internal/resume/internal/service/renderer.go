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
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ecodeclub/jobportal/internal/resume/internal/domain"
	"github.com/lukasjarosch/go-docx"
)

var ErrTemplateOutsideDir = errors.New("模板文件不在模板目录下")

// Renderer 把简历内容渲染成文件，返回文件的访问地址
//
//go:generate mockgen -source=./renderer.go -destination=./mocks/renderer.mock.go -package=svcmocks -typed=true Renderer
type Renderer interface {
	// CheckTemplate 模板文件必须位于模板目录下
	CheckTemplate(path string) error
	// Remove 删除 Render 生成的文件
	Remove(ctx context.Context, fileURL string) error
	Render(ctx context.Context, tpl domain.Template, r domain.Resume) (string, error)
}

// DocxRenderer 替换 docx 模板里的占位符
type DocxRenderer struct {
	templateDir string
	outputDir   string
	baseURL     string
}

func NewDocxRenderer(templateDir, outputDir, baseURL string) *DocxRenderer {
	dir, err := filepath.Abs(templateDir)
	if err != nil {
		dir = filepath.Clean(templateDir)
	}
	return &DocxRenderer{
		templateDir: dir,
		outputDir:   outputDir,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

func (d *DocxRenderer) CheckTemplate(path string) error {
	_, err := d.templateFile(path)
	return err
}

// templateFile 相对路径基于模板目录解析，解析之后不能跳出模板目录
func (d *DocxRenderer) templateFile(path string) (string, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(d.templateDir, full)
	}
	full = filepath.Clean(full)
	rel, err := filepath.Rel(d.templateDir, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrTemplateOutsideDir, path)
	}
	return full, nil
}

func (d *DocxRenderer) Render(ctx context.Context, tpl domain.Template, r domain.Resume) (string, error) {
	path, err := d.templateFile(tpl.TemplatePath)
	if err != nil {
		return "", err
	}
	doc, err := docx.Open(path)
	if err != nil {
		return "", fmt.Errorf("打开模版docx文件失败: %w", err)
	}
	defer doc.Close()

	err = doc.ReplaceAll(placeholders(r.Content))
	if err != nil {
		return "", fmt.Errorf("替换元素失败: %w", err)
	}
	err = os.MkdirAll(d.outputDir, 0o755)
	if err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	name := fmt.Sprintf("resume_%d_%d.docx", r.Uid, time.Now().UnixNano())
	err = doc.WriteToFile(filepath.Join(d.outputDir, name))
	if err != nil {
		return "", fmt.Errorf("写入简历文件失败: %w", err)
	}
	return d.baseURL + "/" + name, nil
}

func (d *DocxRenderer) Remove(ctx context.Context, fileURL string) error {
	name := filepath.Base(strings.TrimPrefix(fileURL, d.baseURL+"/"))
	err := os.Remove(filepath.Join(d.outputDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// placeholders 把内容转换成占位符，嵌套的结构按行展开
func placeholders(content map[string]any) docx.PlaceholderMap {
	res := make(docx.PlaceholderMap, len(content))
	for k, v := range content {
		res[k] = stringify(v)
	}
	return res
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, "\n")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+": "+stringify(val[key]))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}
