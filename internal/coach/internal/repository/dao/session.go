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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrSessionInactive = errors.New("会话不存在或者已经结束")
)

const (
	statusActive uint8 = 1
	statusClosed uint8 = 2
)

type CoachSessionDAO interface {
	Create(ctx context.Context, s CoachSession) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]CoachSession, error)
	FindBySN(ctx context.Context, uid int64, sn string) (CoachSession, error)
	// UpdateMessages 只会更新仍然处于活跃状态的会话
	UpdateMessages(ctx context.Context, uid int64, sn string, msgs []Message) error
	Close(ctx context.Context, uid int64, sn string) error
	UpdateFeedback(ctx context.Context, uid int64, sn string, rating int, comment string) error
	// CloseIdle 关闭最后活跃时间早于 utime 的会话，返回关闭的数量
	CloseIdle(ctx context.Context, utime int64) (int64, error)
}

type GORMCoachSessionDAO struct {
	db *egorm.Component
}

func NewGORMCoachSessionDAO(db *egorm.Component) CoachSessionDAO {
	return &GORMCoachSessionDAO{db: db}
}

func (d *GORMCoachSessionDAO) Create(ctx context.Context, s CoachSession) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := d.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

func (d *GORMCoachSessionDAO) FindByUid(ctx context.Context, uid int64) ([]CoachSession, error) {
	var res []CoachSession
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("utime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (d *GORMCoachSessionDAO) FindBySN(ctx context.Context, uid int64, sn string) (CoachSession, error) {
	var res CoachSession
	err := d.db.WithContext(ctx).
		Where("sn = ? AND uid = ?", sn, uid).
		First(&res).Error
	return res, err
}

func (d *GORMCoachSessionDAO) UpdateMessages(ctx context.Context, uid int64, sn string, msgs []Message) error {
	res := d.db.WithContext(ctx).Model(&CoachSession{}).
		Where("sn = ? AND uid = ? AND status = ?", sn, uid, statusActive).
		Updates(map[string]any{
			"messages": sqlx.JsonColumn[[]Message]{Val: msgs, Valid: true},
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSessionInactive
	}
	return nil
}

func (d *GORMCoachSessionDAO) Close(ctx context.Context, uid int64, sn string) error {
	return d.update(ctx, uid, sn, map[string]any{
		"status": statusClosed,
	})
}

func (d *GORMCoachSessionDAO) UpdateFeedback(ctx context.Context, uid int64, sn string, rating int, comment string) error {
	return d.update(ctx, uid, sn, map[string]any{
		"rating":  rating,
		"comment": comment,
	})
}

func (d *GORMCoachSessionDAO) update(ctx context.Context, uid int64, sn string, values map[string]any) error {
	values["utime"] = time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&CoachSession{}).
		Where("sn = ? AND uid = ?", sn, uid).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *GORMCoachSessionDAO) CloseIdle(ctx context.Context, utime int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&CoachSession{}).
		Where("status = ? AND utime < ?", statusActive, utime).
		Updates(map[string]any{
			"status": statusClosed,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

type CoachSession struct {
	Id       int64                      `gorm:"primaryKey,autoIncrement"`
	SN       string                     `gorm:"type:varchar(255);uniqueIndex"`
	Uid      int64                      `gorm:"index"`
	Type     string                     `gorm:"type:varchar(64)"`
	Messages sqlx.JsonColumn[[]Message] `gorm:"type:json"`
	Rating   int
	Comment  string `gorm:"type:varchar(1024)"`
	Status   uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_utime"`
	Ctime    int64
	Utime    int64 `gorm:"index:idx_status_utime"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Ctime   int64  `json:"ctime"`
}
