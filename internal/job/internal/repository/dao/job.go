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
	"strings"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type JobDAO interface {
	Insert(ctx context.Context, j Job) (int64, error)
	FindById(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context, offset, limit int) ([]Job, error)
	Count(ctx context.Context) (int64, error)
	// FindBySkills 标题、描述、要求里面包含任何一个技能就算命中，忽略大小写
	// skills 为空或者全是空白的时候直接返回空列表，不查询数据库
	FindBySkills(ctx context.Context, skills []string) ([]Job, error)
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (d *GORMJobDAO) Insert(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := d.db.WithContext(ctx).Create(&j).Error
	return j.Id, err
}

func (d *GORMJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

func (d *GORMJobDAO) List(ctx context.Context, offset, limit int) ([]Job, error) {
	var res []Job
	err := d.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMJobDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Job{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMJobDAO) FindBySkills(ctx context.Context, skills []string) ([]Job, error) {
	conds := make([]string, 0, len(skills))
	args := make([]any, 0, len(skills)*3)
	for _, s := range skills {
		if s == "" {
			continue
		}
		pattern := "%" + escapeLike(strings.ToLower(s)) + "%"
		// requirements 逐个元素匹配，避免匹配到 JSON 的引号和逗号
		conds = append(conds, "LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR JSON_SEARCH(LOWER(requirements), 'one', ?) IS NOT NULL")
		args = append(args, pattern, pattern, pattern)
	}
	// 没有技能就不可能命中任何职位
	if len(conds) == 0 {
		return []Job{}, nil
	}
	var res []Job
	err := d.db.WithContext(ctx).
		Where(strings.Join(conds, " OR "), args...).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type Job struct {
	Id           int64                     `gorm:"primaryKey,autoIncrement"`
	Title        string                    `gorm:"type:varchar(256)"`
	Description  string                    `gorm:"type:text"`
	Requirements sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Location     string                    `gorm:"type:varchar(256)"`
	JobType      string                    `gorm:"type:varchar(64)"`
	Salary       int64
	CompanyId    int64  `gorm:"index"`
	CompanyName  string `gorm:"type:varchar(256)"`
	CompanyLogo  string `gorm:"type:varchar(512)"`
	Ctime        int64
	Utime        int64
}
