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
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobportal/internal/ai"
	"github.com/ecodeclub/jobportal/internal/coach/internal/domain"
	"github.com/ecodeclub/jobportal/internal/coach/internal/repository"
	"github.com/ecodeclub/jobportal/internal/pkg/sngenerator"
)

// 发给 AI 的上下文最多 10 条，包含本次用户的提问
const contextSize = 10

var (
	ErrInvalidInput    = errors.New("参数错误")
	ErrSessionNotFound = repository.ErrSessionNotFound
	ErrSessionClosed   = errors.New("会话已经结束")
)

//go:generate mockgen -source=./session.go -destination=../../mocks/session.mock.go -package=coachmocks -typed=true Service
type Service interface {
	Create(ctx context.Context, uid int64, sessionType string) (domain.Session, error)
	List(ctx context.Context, uid int64) ([]domain.Session, error)
	Detail(ctx context.Context, uid int64, sn string) (domain.Session, error)
	// SendMessage 返回 AI 的回复
	SendMessage(ctx context.Context, uid int64, sn string, content string) (domain.Message, error)
	Close(ctx context.Context, uid int64, sn string) error
	Feedback(ctx context.Context, uid int64, sn string, fb domain.Feedback) error
	CloseIdle(ctx context.Context, before time.Time) (int64, error)
}

type service struct {
	repo        repository.SessionRepository
	generator   ai.Generator
	snGenerator *sngenerator.Generator
}

func NewService(repo repository.SessionRepository, generator ai.Generator) Service {
	return &service{
		repo:        repo,
		generator:   generator,
		snGenerator: sngenerator.NewGenerator(),
	}
}

func (s *service) Create(ctx context.Context, uid int64, sessionType string) (domain.Session, error) {
	typ := domain.ParseSessionType(sessionType)
	now := time.Now()
	sess := domain.Session{
		SN:   s.snGenerator.Generate(uid),
		Uid:  uid,
		Type: typ,
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: typ.Greeting(), Ctime: now},
		},
		Status: domain.SessionStatusActive,
		Ctime:  now,
		Utime:  now,
	}
	id, err := s.repo.Create(ctx, sess)
	if err != nil {
		return domain.Session{}, fmt.Errorf("创建会话失败 %w", err)
	}
	sess.ID = id
	return sess, nil
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Session, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Detail(ctx context.Context, uid int64, sn string) (domain.Session, error) {
	return s.repo.FindBySN(ctx, uid, sn)
}

func (s *service) SendMessage(ctx context.Context, uid int64, sn string, content string) (domain.Message, error) {
	sess, err := s.repo.FindBySN(ctx, uid, sn)
	if err != nil {
		return domain.Message{}, err
	}
	if !sess.Active() {
		return domain.Message{}, ErrSessionClosed
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, fmt.Errorf("%w 消息内容为空", ErrInvalidInput)
	}

	resp, err := s.generator.Generate(ctx, ai.GenerateRequest{
		Uid:    uid,
		Tid:    sn,
		Biz:    ai.BizCoachChat,
		Prompt: content,
		History: slice.Map(sess.RecentMessages(contextSize-1), func(idx int, src domain.Message) ai.Message {
			return ai.Message{Role: ai.Role(src.Role), Content: src.Content}
		}),
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("生成回复失败 %w", err)
	}

	now := time.Now()
	reply := domain.Message{Role: domain.RoleAssistant, Content: resp.Answer, Ctime: now}
	msgs := append(sess.Messages,
		domain.Message{Role: domain.RoleUser, Content: content, Ctime: now},
		reply)
	err = s.repo.UpdateMessages(ctx, uid, sn, msgs)
	if errors.Is(err, repository.ErrSessionInactive) {
		// 生成回复的过程中会话被关闭了
		return domain.Message{}, ErrSessionClosed
	}
	if err != nil {
		return domain.Message{}, fmt.Errorf("保存消息失败 %w", err)
	}
	return reply, nil
}

func (s *service) Close(ctx context.Context, uid int64, sn string) error {
	return s.repo.Close(ctx, uid, sn)
}

func (s *service) Feedback(ctx context.Context, uid int64, sn string, fb domain.Feedback) error {
	if !fb.Valid() {
		return fmt.Errorf("%w 评分必须在 1 到 5 之间 %d", ErrInvalidInput, fb.Rating)
	}
	return s.repo.UpdateFeedback(ctx, uid, sn, fb)
}

func (s *service) CloseIdle(ctx context.Context, before time.Time) (int64, error) {
	return s.repo.CloseIdle(ctx, before)
}
