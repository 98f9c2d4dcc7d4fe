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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobportal/internal/profile/internal/domain"
	"github.com/ecodeclub/jobportal/internal/profile/internal/repository/cache"
	"github.com/ecodeclub/jobportal/internal/profile/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrProfileNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./profile.go -package=repomocks -destination=mocks/profile.mock.go -typed=true ProfileRepository
type ProfileRepository interface {
	FindByUid(ctx context.Context, uid int64) (domain.Profile, error)
	Save(ctx context.Context, p domain.Profile) error
	UpdateSkills(ctx context.Context, uid int64, skills []string) error
}

// CachedProfileRepository 读的时候 cache aside，写的时候删缓存
type CachedProfileRepository struct {
	dao    dao.ProfileDAO
	cache  cache.ProfileCache
	logger *elog.Component
}

func NewCachedProfileRepository(d dao.ProfileDAO, c cache.ProfileCache) ProfileRepository {
	return &CachedProfileRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedProfileRepository) FindByUid(ctx context.Context, uid int64) (domain.Profile, error) {
	p, err := r.cache.Get(ctx, uid)
	if err == nil {
		return p, nil
	}
	pe, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	p = r.toDomain(pe)
	// 忽略掉这里的错误
	_ = r.cache.Set(ctx, p)
	return p, nil
}

func (r *CachedProfileRepository) Save(ctx context.Context, p domain.Profile) error {
	err := r.dao.Upsert(ctx, r.toEntity(p))
	if err != nil {
		return err
	}
	r.evict(ctx, p.Uid)
	return nil
}

func (r *CachedProfileRepository) UpdateSkills(ctx context.Context, uid int64, skills []string) error {
	err := r.dao.UpdateSkills(ctx, uid, skills)
	if err != nil {
		return err
	}
	r.evict(ctx, uid)
	return nil
}

func (r *CachedProfileRepository) evict(ctx context.Context, uid int64) {
	// 缓存会过期，删除失败只记录
	if err := r.cache.Delete(ctx, uid); err != nil {
		r.logger.Error("删除个人资料缓存失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
}

func (r *CachedProfileRepository) toEntity(p domain.Profile) dao.Profile {
	return dao.Profile{
		Uid:                p.Uid,
		Fullname:           p.Fullname,
		Bio:                p.Bio,
		Skills:             r.jsonColumn(p.Skills),
		Interests:          r.jsonColumn(p.Interests),
		PreferredJobTypes:  r.jsonColumn(p.PreferredJobTypes),
		PreferredLocations: r.jsonColumn(p.PreferredLocations),
		SalaryMin:          p.PreferredSalary.Min,
		SalaryMax:          p.PreferredSalary.Max,
		SalaryCurrency:     p.PreferredSalary.Currency,
		CareerGoals:        p.CareerGoals,
		CommunicationStyle: string(p.CoachSettings.CommunicationStyle),

		NotifyJobMatches:       p.CoachSettings.Notifications.JobMatches,
		NotifyCareerTips:       p.CoachSettings.Notifications.CareerTips,
		NotifySessionReminders: p.CoachSettings.Notifications.SessionReminders,
	}
}

func (r *CachedProfileRepository) toDomain(p dao.Profile) domain.Profile {
	return domain.Profile{
		Uid:                p.Uid,
		Fullname:           p.Fullname,
		Bio:                p.Bio,
		Skills:             p.Skills.Val,
		Interests:          p.Interests.Val,
		PreferredJobTypes:  p.PreferredJobTypes.Val,
		PreferredLocations: p.PreferredLocations.Val,
		PreferredSalary: domain.Salary{
			Min:      p.SalaryMin,
			Max:      p.SalaryMax,
			Currency: p.SalaryCurrency,
		},
		CareerGoals: p.CareerGoals,
		CoachSettings: domain.CoachSettings{
			CommunicationStyle: domain.CommunicationStyle(p.CommunicationStyle),
			Notifications: domain.Notifications{
				JobMatches:       p.NotifyJobMatches,
				CareerTips:       p.NotifyCareerTips,
				SessionReminders: p.NotifySessionReminders,
			},
		},
		Ctime: p.Ctime,
		Utime: p.Utime,
	}
}

func (r *CachedProfileRepository) jsonColumn(val []string) sqlx.JsonColumn[[]string] {
	return sqlx.JsonColumn[[]string]{Val: val, Valid: true}
}
