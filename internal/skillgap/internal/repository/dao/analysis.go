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
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type AnalysisDAO interface {
	Create(ctx context.Context, a SkillGapAnalysis) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]SkillGapAnalysis, error)
	FindById(ctx context.Context, uid, id int64) (SkillGapAnalysis, error)
}

type GORMAnalysisDAO struct {
	db *egorm.Component
}

func NewGORMAnalysisDAO(db *egorm.Component) AnalysisDAO {
	return &GORMAnalysisDAO{db: db}
}

func (d *GORMAnalysisDAO) Create(ctx context.Context, a SkillGapAnalysis) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := d.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (d *GORMAnalysisDAO) FindByUid(ctx context.Context, uid int64) ([]SkillGapAnalysis, error) {
	var res []SkillGapAnalysis
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (d *GORMAnalysisDAO) FindById(ctx context.Context, uid, id int64) (SkillGapAnalysis, error) {
	var res SkillGapAnalysis
	err := d.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&res).Error
	return res, err
}

type SkillGapAnalysis struct {
	Id                   int64                           `gorm:"primaryKey,autoIncrement"`
	Uid                  int64                           `gorm:"index:idx_uid_ctime"`
	TargetJobTitle       string                          `gorm:"type:varchar(256)"`
	TargetJobDescription string                          `gorm:"type:text"`
	UserSkills           sqlx.JsonColumn[[]string]       `gorm:"type:json"`
	RequiredSkills       sqlx.JsonColumn[[]string]       `gorm:"type:json"`
	MissingSkills        sqlx.JsonColumn[[]MissingSkill] `gorm:"type:json"`
	AnalysisReport       string                          `gorm:"type:text"`
	IsCompleted          bool
	Ctime                int64 `gorm:"index:idx_uid_ctime"`
	Utime                int64
}

type MissingSkill struct {
	Skill      string     `json:"skill"`
	Importance string     `json:"importance"`
	Resources  []Resource `json:"resources"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}
