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

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./profile.go -package=daomocks -destination=mocks/profile.mock.go ProfileDAO
type ProfileDAO interface {
	FindByUid(ctx context.Context, uid int64) (Profile, error)
	Upsert(ctx context.Context, p Profile) error
	// UpdateSkills 只更新技能，不存在的时候返回 ErrDataNotFound
	UpdateSkills(ctx context.Context, uid int64, skills []string) error
}

type GORMProfileDAO struct {
	db *egorm.Component
}

func NewGORMProfileDAO(db *egorm.Component) ProfileDAO {
	return &GORMProfileDAO{db: db}
}

func (d *GORMProfileDAO) FindByUid(ctx context.Context, uid int64) (Profile, error) {
	var p Profile
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&p).Error
	return p, err
}

func (d *GORMProfileDAO) Upsert(ctx context.Context, p Profile) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"fullname", "bio", "skills", "interests",
			"preferred_job_types", "preferred_locations",
			"salary_min", "salary_max", "salary_currency",
			"career_goals", "communication_style",
			"notify_job_matches", "notify_career_tips", "notify_session_reminders",
			"utime",
		}),
	}).Create(&p).Error
}

func (d *GORMProfileDAO) UpdateSkills(ctx context.Context, uid int64, skills []string) error {
	res := d.db.WithContext(ctx).Model(&Profile{}).
		Where("uid = ?", uid).
		Updates(map[string]any{
			"skills": sqlx.JsonColumn[[]string]{Val: skills, Valid: true},
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

type Profile struct {
	Id                 int64                     `gorm:"primaryKey,autoIncrement"`
	Uid                int64                     `gorm:"uniqueIndex"`
	Fullname           string                    `gorm:"type:varchar(256)"`
	Bio                string                    `gorm:"type:text"`
	Skills             sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Interests          sqlx.JsonColumn[[]string] `gorm:"type:json"`
	PreferredJobTypes  sqlx.JsonColumn[[]string] `gorm:"type:json"`
	PreferredLocations sqlx.JsonColumn[[]string] `gorm:"type:json"`
	SalaryMin          int64
	SalaryMax          int64
	SalaryCurrency     string `gorm:"type:varchar(16)"`
	CareerGoals        string `gorm:"type:text"`
	CommunicationStyle string `gorm:"type:varchar(32)"`
	// 通知偏好
	NotifyJobMatches       bool
	NotifyCareerTips       bool
	NotifySessionReminders bool
	Ctime                  int64
	Utime                  int64
}
