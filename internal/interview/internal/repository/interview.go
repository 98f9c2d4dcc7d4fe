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
	"github.com/ecodeclub/jobportal/internal/interview/internal/domain"
	"github.com/ecodeclub/jobportal/internal/interview/internal/repository/dao"
)

var ErrInterviewNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./interview.go -destination=./mocks/interview.mock.go -package=repomocks -typed=true InterviewRepository
type InterviewRepository interface {
	Create(ctx context.Context, i domain.Interview) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Interview, error)
	FindById(ctx context.Context, uid, id int64) (domain.Interview, error)
	UpdateProgress(ctx context.Context, i domain.Interview) error
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: d}
}

func (r *interviewRepository) Create(ctx context.Context, i domain.Interview) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(i))
}

func (r *interviewRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Interview, error) {
	res, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.MockInterview) domain.Interview {
		return r.toDomain(src)
	}), nil
}

func (r *interviewRepository) FindById(ctx context.Context, uid, id int64) (domain.Interview, error) {
	res, err := r.dao.FindById(ctx, uid, id)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(res), nil
}

func (r *interviewRepository) UpdateProgress(ctx context.Context, i domain.Interview) error {
	return r.dao.UpdateProgress(ctx, r.toEntity(i))
}

func (r *interviewRepository) toEntity(i domain.Interview) dao.MockInterview {
	return dao.MockInterview{
		Id:       i.ID,
		Uid:      i.Uid,
		JobTitle: i.JobTitle,
		Type:     string(i.Type),
		Questions: sqlx.JsonColumn[[]dao.Question]{
			Val: slice.Map(i.Questions, func(idx int, src domain.Question) dao.Question {
				return dao.Question{
					Question: src.Question,
					Answer:   src.Answer,
					Feedback: src.Feedback,
					Score:    src.Score,
				}
			}),
			Valid: true,
		},
		OverallFeedback: i.OverallFeedback,
		OverallScore:    i.OverallScore,
		IsCompleted:     i.IsCompleted,
	}
}

func (r *interviewRepository) toDomain(i dao.MockInterview) domain.Interview {
	return domain.Interview{
		ID:       i.Id,
		Uid:      i.Uid,
		JobTitle: i.JobTitle,
		Type:     domain.InterviewType(i.Type),
		Questions: slice.Map(i.Questions.Val, func(idx int, src dao.Question) domain.Question {
			return domain.Question{
				Question: src.Question,
				Answer:   src.Answer,
				Feedback: src.Feedback,
				Score:    src.Score,
			}
		}),
		OverallFeedback: i.OverallFeedback,
		OverallScore:    i.OverallScore,
		IsCompleted:     i.IsCompleted,
		Ctime:           time.UnixMilli(i.Ctime),
		Utime:           time.UnixMilli(i.Utime),
	}
}
