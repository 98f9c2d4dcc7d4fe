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

type InterviewDAO interface {
	Create(ctx context.Context, i MockInterview) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]MockInterview, error)
	FindById(ctx context.Context, uid, id int64) (MockInterview, error)
	// UpdateProgress 更新回答和完成情况
	UpdateProgress(ctx context.Context, i MockInterview) error
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (d *GORMInterviewDAO) Create(ctx context.Context, i MockInterview) (int64, error) {
	now := time.Now().UnixMilli()
	i.Ctime = now
	i.Utime = now
	err := d.db.WithContext(ctx).Create(&i).Error
	return i.Id, err
}

func (d *GORMInterviewDAO) FindByUid(ctx context.Context, uid int64) ([]MockInterview, error) {
	var res []MockInterview
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (d *GORMInterviewDAO) FindById(ctx context.Context, uid, id int64) (MockInterview, error) {
	var res MockInterview
	err := d.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&res).Error
	return res, err
}

func (d *GORMInterviewDAO) UpdateProgress(ctx context.Context, i MockInterview) error {
	res := d.db.WithContext(ctx).Model(&MockInterview{}).
		Where("id = ? AND uid = ?", i.Id, i.Uid).
		Updates(map[string]any{
			"questions":        i.Questions,
			"overall_feedback": i.OverallFeedback,
			"overall_score":    i.OverallScore,
			"is_completed":     i.IsCompleted,
			"utime":            time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type MockInterview struct {
	Id              int64                       `gorm:"primaryKey,autoIncrement"`
	Uid             int64                       `gorm:"index:idx_uid_ctime"`
	JobTitle        string                      `gorm:"type:varchar(256)"`
	Type            string                      `gorm:"type:varchar(32)"`
	Questions       sqlx.JsonColumn[[]Question] `gorm:"type:json"`
	OverallFeedback string                      `gorm:"type:text"`
	OverallScore    int
	IsCompleted     bool
	Ctime           int64 `gorm:"index:idx_uid_ctime"`
	Utime           int64
}

type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Feedback string `json:"feedback"`
	Score    int    `json:"score"`
}
