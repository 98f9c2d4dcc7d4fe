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

type CareerPathDAO interface {
	Create(ctx context.Context, p CareerPath) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]CareerPath, error)
	FindById(ctx context.Context, uid, id int64) (CareerPath, error)
}

type GORMCareerPathDAO struct {
	db *egorm.Component
}

func NewGORMCareerPathDAO(db *egorm.Component) CareerPathDAO {
	return &GORMCareerPathDAO{db: db}
}

func (d *GORMCareerPathDAO) Create(ctx context.Context, p CareerPath) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *GORMCareerPathDAO) FindByUid(ctx context.Context, uid int64) ([]CareerPath, error) {
	var res []CareerPath
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (d *GORMCareerPathDAO) FindById(ctx context.Context, uid, id int64) (CareerPath, error) {
	var res CareerPath
	err := d.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&res).Error
	return res, err
}

type CareerPath struct {
	Id              int64                        `gorm:"primaryKey,autoIncrement"`
	Uid             int64                        `gorm:"index:idx_uid_ctime"`
	CurrentPosition string                       `gorm:"type:varchar(256)"`
	TargetPosition  string                       `gorm:"type:varchar(256)"`
	Timeframe       string                       `gorm:"type:varchar(32)"`
	Milestones      sqlx.JsonColumn[[]Milestone] `gorm:"type:json"`
	PathReport      string                       `gorm:"type:text"`
	IsCompleted     bool
	Ctime           int64 `gorm:"index:idx_uid_ctime"`
	Utime           int64
}

type Milestone struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	SkillsToAcquire     []string   `json:"skillsToAcquire"`
	EstimatedTimeMonths int        `json:"estimatedTimeMonths"`
	Resources           []Resource `json:"resources"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}
