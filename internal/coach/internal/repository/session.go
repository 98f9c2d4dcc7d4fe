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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobportal/internal/coach/internal/domain"
	"github.com/ecodeclub/jobportal/internal/coach/internal/repository/dao"
)

var (
	ErrSessionNotFound = dao.ErrRecordNotFound
	ErrSessionInactive = dao.ErrSessionInactive
)

//go:generate mockgen -source=./session.go -destination=./mocks/session.mock.go -package=repomocks -typed=true SessionRepository
type SessionRepository interface {
	Create(ctx context.Context, s domain.Session) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Session, error)
	FindBySN(ctx context.Context, uid int64, sn string) (domain.Session, error)
	UpdateMessages(ctx context.Context, uid int64, sn string, msgs []domain.Message) error
	Close(ctx context.Context, uid int64, sn string) error
	UpdateFeedback(ctx context.Context, uid int64, sn string, fb domain.Feedback) error
	CloseIdle(ctx context.Context, before time.Time) (int64, error)
}

type sessionRepository struct {
	dao dao.CoachSessionDAO
}

func NewSessionRepository(d dao.CoachSessionDAO) SessionRepository {
	return &sessionRepository{dao: d}
}

func (r *sessionRepository) Create(ctx context.Context, s domain.Session) (int64, error) {
	return r.dao.Create(ctx, dao.CoachSession{
		SN:       s.SN,
		Uid:      s.Uid,
		Type:     string(s.Type),
		Messages: sqlx.JsonColumn[[]dao.Message]{Val: r.toEntityMessages(s.Messages), Valid: true},
		Rating:   s.Feedback.Rating,
		Comment:  s.Feedback.Comment,
		Status:   s.Status.ToUint8(),
	})
}

func (r *sessionRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Session, error) {
	res, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.CoachSession) domain.Session {
		return r.toDomain(src)
	}), nil
}

func (r *sessionRepository) FindBySN(ctx context.Context, uid int64, sn string) (domain.Session, error) {
	res, err := r.dao.FindBySN(ctx, uid, sn)
	if err != nil {
		return domain.Session{}, err
	}
	return r.toDomain(res), nil
}

func (r *sessionRepository) UpdateMessages(ctx context.Context, uid int64, sn string, msgs []domain.Message) error {
	return r.dao.UpdateMessages(ctx, uid, sn, r.toEntityMessages(msgs))
}

func (r *sessionRepository) Close(ctx context.Context, uid int64, sn string) error {
	return r.dao.Close(ctx, uid, sn)
}

func (r *sessionRepository) UpdateFeedback(ctx context.Context, uid int64, sn string, fb domain.Feedback) error {
	return r.dao.UpdateFeedback(ctx, uid, sn, fb.Rating, fb.Comment)
}

func (r *sessionRepository) CloseIdle(ctx context.Context, before time.Time) (int64, error) {
	return r.dao.CloseIdle(ctx, before.UnixMilli())
}

func (r *sessionRepository) toEntityMessages(msgs []domain.Message) []dao.Message {
	return slice.Map(msgs, func(idx int, src domain.Message) dao.Message {
		return dao.Message{
			Role:    string(src.Role),
			Content: src.Content,
			Ctime:   src.Ctime.UnixMilli(),
		}
	})
}

func (r *sessionRepository) toDomain(s dao.CoachSession) domain.Session {
	return domain.Session{
		ID:   s.Id,
		SN:   s.SN,
		Uid:  s.Uid,
		Type: domain.SessionType(s.Type),
		Messages: slice.Map(s.Messages.Val, func(idx int, src dao.Message) domain.Message {
			return domain.Message{
				Role:    domain.Role(src.Role),
				Content: src.Content,
				Ctime:   time.UnixMilli(src.Ctime),
			}
		}),
		Feedback: domain.Feedback{
			Rating:  s.Rating,
			Comment: s.Comment,
		},
		Status: domain.SessionStatus(s.Status),
		Ctime:  time.UnixMilli(s.Ctime),
		Utime:  time.UnixMilli(s.Utime),
	}
}
