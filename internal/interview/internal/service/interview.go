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

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ecodeclub/jobportal/internal/ai"
	"github.com/ecodeclub/jobportal/internal/interview/internal/domain"
	"github.com/ecodeclub/jobportal/internal/interview/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// AI 不可用的时候使用的点评
const fallbackFeedback = "Your answer was clear and structured. Consider providing more specific examples to strengthen your response."

var (
	ErrInvalidInput      = errors.New("参数错误")
	ErrInterviewNotFound = repository.ErrInterviewNotFound
)

// ScoreFunc 给单题打分
type ScoreFunc func() int

// 6 到 10 分
func randomScore() int {
	return rand.IntN(5) + 6
}

//go:generate mockgen -source=./interview.go -destination=../../mocks/interview.mock.go -package=interviewmocks -typed=true Service
type Service interface {
	Create(ctx context.Context, uid int64, jobTitle, interviewType string) (domain.Interview, error)
	// Answer 返回更新之后的面试
	Answer(ctx context.Context, uid, id int64, index int, answer string) (domain.Interview, error)
	List(ctx context.Context, uid int64) ([]domain.Interview, error)
	Detail(ctx context.Context, uid, id int64) (domain.Interview, error)
}

type service struct {
	repo      repository.InterviewRepository
	generator ai.Generator
	score     ScoreFunc
	logger    *elog.Component
}

func NewService(repo repository.InterviewRepository, generator ai.Generator) Service {
	return newService(repo, generator, randomScore)
}

func newService(repo repository.InterviewRepository, generator ai.Generator, score ScoreFunc) *service {
	return &service{
		repo:      repo,
		generator: generator,
		score:     score,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, uid int64, jobTitle, interviewType string) (domain.Interview, error) {
	i := domain.Interview{
		Uid:       uid,
		JobTitle:  strings.TrimSpace(jobTitle),
		Type:      domain.ParseInterviewType(interviewType),
		Questions: domain.DefaultQuestions(),
	}
	id, err := s.repo.Create(ctx, i)
	if err != nil {
		return domain.Interview{}, fmt.Errorf("创建模拟面试失败 %w", err)
	}
	i.ID = id
	return i, nil
}

func (s *service) Answer(ctx context.Context, uid, id int64, index int, answer string) (domain.Interview, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return domain.Interview{}, fmt.Errorf("%w 回答不能为空", ErrInvalidInput)
	}
	i, err := s.repo.FindById(ctx, uid, id)
	if err != nil {
		return domain.Interview{}, err
	}
	if index < 0 || index >= len(i.Questions) {
		return domain.Interview{}, fmt.Errorf("%w 题目下标 %d", ErrInvalidInput, index)
	}
	feedback := s.feedback(ctx, i, index, answer)
	err = i.Answer(index, answer, feedback, s.score())
	if err != nil {
		return domain.Interview{}, fmt.Errorf("%w %w", ErrInvalidInput, err)
	}
	err = s.repo.UpdateProgress(ctx, i)
	if err != nil {
		return domain.Interview{}, fmt.Errorf("保存回答失败 %w", err)
	}
	return i, nil
}

func (s *service) feedback(ctx context.Context, i domain.Interview, index int, answer string) string {
	resp, err := s.generator.Generate(ctx, ai.GenerateRequest{
		Uid: i.Uid,
		Tid: fmt.Sprintf("interview-%d-%d", i.ID, index),
		Biz: ai.BizInterviewFeedback,
		Prompt: fmt.Sprintf("Give feedback on this %s interview answer for the %s position.\nQuestion: %s\nAnswer: %s",
			i.Type, i.JobTitle, i.Questions[index].Question, answer),
	})
	if err != nil || resp.Answer == "" {
		s.logger.Error("生成面试点评失败，使用默认点评",
			elog.FieldErr(err),
			elog.Int64("interviewId", i.ID),
			elog.Int("index", index))
		return fallbackFeedback
	}
	return resp.Answer
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Interview, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Interview, error) {
	return s.repo.FindById(ctx, uid, id)
}
