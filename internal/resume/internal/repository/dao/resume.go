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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ResumeDAO interface {
	SaveTemplate(ctx context.Context, t ResumeTemplate) (int64, error)
	FindActiveTemplates(ctx context.Context) ([]ResumeTemplate, error)
	FindTemplateById(ctx context.Context, id int64) (ResumeTemplate, error)
	CreateResume(ctx context.Context, r UserResume) (int64, error)
	FindResumesByUid(ctx context.Context, uid int64) ([]UserResume, error)
}

type GORMResumeDAO struct {
	db *egorm.Component
}

func NewGORMResumeDAO(db *egorm.Component) ResumeDAO {
	return &GORMResumeDAO{db: db}
}

func (d *GORMResumeDAO) SaveTemplate(ctx context.Context, t ResumeTemplate) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"name":          t.Name,
			"description":   t.Description,
			"template_path": t.TemplatePath,
			"preview_image": t.PreviewImage,
			"category":      t.Category,
			"active":        t.Active,
			"utime":         now,
		}),
	}).Create(&t).Error
	return t.Id, err
}

func (d *GORMResumeDAO) FindActiveTemplates(ctx context.Context) ([]ResumeTemplate, error) {
	var res []ResumeTemplate
	err := d.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMResumeDAO) FindTemplateById(ctx context.Context, id int64) (ResumeTemplate, error) {
	var res ResumeTemplate
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *GORMResumeDAO) CreateResume(ctx context.Context, r UserResume) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := d.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (d *GORMResumeDAO) FindResumesByUid(ctx context.Context, uid int64) ([]UserResume, error) {
	var res []UserResume
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

type ResumeTemplate struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Name         string `gorm:"type:varchar(256)"`
	Description  string `gorm:"type:text"`
	TemplatePath string `gorm:"type:varchar(512)"`
	PreviewImage string `gorm:"type:varchar(512)"`
	Category     string `gorm:"type:varchar(32)"`
	Active       bool   `gorm:"index"`
	Ctime        int64
	Utime        int64
}

type UserResume struct {
	Id           int64                           `gorm:"primaryKey,autoIncrement"`
	Uid          int64                           `gorm:"index:idx_uid_ctime"`
	TemplateId   int64                           `gorm:"index"`
	TemplateName string                          `gorm:"type:varchar(256)"`
	Category     string                          `gorm:"type:varchar(32)"`
	Content      sqlx.JsonColumn[map[string]any] `gorm:"type:json"`
	FileURL      string                          `gorm:"type:varchar(512)"`
	Ctime        int64                           `gorm:"index:idx_uid_ctime"`
	Utime        int64
}
