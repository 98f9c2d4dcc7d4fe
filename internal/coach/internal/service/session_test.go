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
	"testing"
	"time"

	"github.com/ecodeclub/jobportal/internal/ai"
	aimocks "github.com/ecodeclub/jobportal/internal/ai/mocks"
	"github.com/ecodeclub/jobportal/internal/coach/internal/domain"
	"github.com/ecodeclub/jobportal/internal/coach/internal/repository"
	repomocks "github.com/ecodeclub/jobportal/internal/coach/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errMockDB = errors.New("mock db error")
	errMockAI = errors.New("mock ai error")
)

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name         string
		sessionType  string
		mock         func(ctrl *gomock.Controller) repository.SessionRepository
		wantType     domain.SessionType
		wantGreeting string
		wantErr      error
	}{
		{
			name:        "简历评审",
			sessionType: "resume_review",
			mock: func(ctrl *gomock.Controller) repository.SessionRepository {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, s domain.Session) (int64, error) {
						assert.NotEmpty(t, s.SN)
						assert.Equal(t, domain.SessionStatusActive, s.Status)
						require.Len(t, s.Messages, 1)
						assert.Equal(t, domain.RoleSystem, s.Messages[0].Role)
						return 10, nil
					})
				return repo
			},
			wantType:     domain.SessionTypeResumeReview,
			wantGreeting: domain.SessionTypeResumeReview.Greeting(),
		},
		{
			name:        "未知类型",
			sessionType: "chitchat",
			mock: func(ctrl *gomock.Controller) repository.SessionRepository {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				return repo
			},
			wantType:     domain.SessionTypeCareerAdvice,
			wantGreeting: domain.SessionTypeCareerAdvice.Greeting(),
		},
		{
			name:        "存储失败",
			sessionType: "interview_prep",
			mock: func(ctrl *gomock.Controller) repository.SessionRepository {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errMockDB)
				return repo
			},
			wantErr: errMockDB,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), aimocks.NewMockGenerator(ctrl))
			sess, err := svc.Create(context.Background(), 1, tc.sessionType)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.NotZero(t, sess.ID)
			assert.True(t, sess.Active())
			assert.Equal(t, tc.wantType, sess.Type)
			assert.Equal(t, tc.wantGreeting, sess.Messages[0].Content)
		})
	}
}

func TestService_SendMessage(t *testing.T) {
	const sn = "sn-1"
	longSession := domain.Session{SN: sn, Uid: 1, Status: domain.SessionStatusActive}
	for i := 0; i < 12; i++ {
		longSession.Messages = append(longSession.Messages, domain.Message{
			Role:    domain.RoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
	}

	testCases := []struct {
		name    string
		content string
		mock    func(ctrl *gomock.Controller) (repository.SessionRepository, ai.Generator)
		want    string
		wantErr error
	}{
		{
			name:    "发送成功，只带最近的上下文",
			content: " how to prepare an interview ",
			mock: func(ctrl *gomock.Controller) (repository.SessionRepository, ai.Generator) {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().FindBySN(gomock.Any(), int64(1), sn).Return(longSession, nil)
				repo.EXPECT().UpdateMessages(gomock.Any(), int64(1), sn, gomock.Any()).
					DoAndReturn(func(ctx context.Context, uid int64, sn string, msgs []domain.Message) error {
						require.Len(t, msgs, 14)
						assert.Equal(t, domain.RoleUser, msgs[12].Role)
						assert.Equal(t, "how to prepare an interview", msgs[12].Content)
						assert.Equal(t, domain.RoleAssistant, msgs[13].Role)
						assert.Equal(t, "use STAR", msgs[13].Content)
						return nil
					})
				generator := aimocks.NewMockGenerator(ctrl)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.GenerateRequest) (ai.GenerateResponse, error) {
						assert.Equal(t, ai.BizCoachChat, req.Biz)
						assert.Equal(t, "how to prepare an interview", req.Prompt)
						require.Len(t, req.History, contextSize-1)
						assert.Equal(t, "message 3", req.History[0].Content)
						assert.Equal(t, "message 11", req.History[8].Content)
						return ai.GenerateResponse{Answer: "use STAR", Tokens: 10}, nil
					})
				return repo, generator
			},
			want: "use STAR",
		},
		{
			name:    "消息为空",
			content: "  ",
			mock: func(ctrl *gomock.Controller) (repository.SessionRepository, ai.Generator) {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().FindBySN(gomock.Any(), int64(1), sn).Return(longSession, nil)
				return repo, aimocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "会话不存在的时候先报不存在",
			content: "  ",
			mock: func(ctrl *gomock.Controller) (repository.SessionRepository, ai.Generator) {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().FindBySN(gomock.Any(), int64(1), sn).Return(domain.Session{}, repository.ErrSessionNotFound)
				return repo, aimocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrSessionNotFound,
		},
		{
			name:    "会话已经结束的时候先报结束",
			content: "",
			mock: func(ctrl *gomock.Controller) (repository.SessionRepository, ai.Generator) {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().FindBySN(gomock.Any(), int64(1), sn).
					Return(domain.Session{SN: sn, Status: domain.SessionStatusClosed}, nil)
				return repo, aimocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrSessionClosed,
		},
		{
			name:    "会话不存在",
			content: "hello",
			mock: func(ctrl *gomock.Controller) (repository.SessionRepository, ai.Generator) {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().FindBySN(gomock.Any(), int64(1), sn).Return(domain.Session{}, repository.ErrSessionNotFound)
				return repo, aimocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrSessionNotFound,
		},
		{
			name:    "会话已经结束",
			content: "hello",
			mock: func(ctrl *gomock.Controller) (repository.SessionRepository, ai.Generator) {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().FindBySN(gomock.Any(), int64(1), sn).
					Return(domain.Session{SN: sn, Status: domain.SessionStatusClosed}, nil)
				return repo, aimocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrSessionClosed,
		},
		{
			name:    "AI 调用失败",
			content: "hello",
			mock: func(ctrl *gomock.Controller) (repository.SessionRepository, ai.Generator) {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().FindBySN(gomock.Any(), int64(1), sn).Return(longSession, nil)
				generator := aimocks.NewMockGenerator(ctrl)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return(ai.GenerateResponse{}, errMockAI)
				return repo, generator
			},
			wantErr: errMockAI,
		},
		{
			name:    "保存时会话已经被关闭",
			content: "hello",
			mock: func(ctrl *gomock.Controller) (repository.SessionRepository, ai.Generator) {
				repo := repomocks.NewMockSessionRepository(ctrl)
				repo.EXPECT().FindBySN(gomock.Any(), int64(1), sn).
					Return(domain.Session{SN: sn, Status: domain.SessionStatusActive}, nil)
				repo.EXPECT().UpdateMessages(gomock.Any(), int64(1), sn, gomock.Any()).
					Return(repository.ErrSessionInactive)
				generator := aimocks.NewMockGenerator(ctrl)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return(ai.GenerateResponse{Answer: "hi"}, nil)
				return repo, generator
			},
			wantErr: ErrSessionClosed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			msg, err := svc.SendMessage(context.Background(), 1, sn, tc.content)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, domain.RoleAssistant, msg.Role)
			assert.Equal(t, tc.want, msg.Content)
		})
	}
}

func TestService_Feedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockSessionRepository(ctrl)
	repo.EXPECT().UpdateFeedback(gomock.Any(), int64(1), "sn-1", domain.Feedback{Rating: 5, Comment: "很有帮助"}).
		Return(nil)
	svc := NewService(repo, aimocks.NewMockGenerator(ctrl))

	err := svc.Feedback(context.Background(), 1, "sn-1", domain.Feedback{Rating: 5, Comment: "很有帮助"})
	require.NoError(t, err)

	err = svc.Feedback(context.Background(), 1, "sn-1", domain.Feedback{Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidInput)
	err = svc.Feedback(context.Background(), 1, "sn-1", domain.Feedback{Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CloseIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	before := time.UnixMilli(1000)
	repo := repomocks.NewMockSessionRepository(ctrl)
	repo.EXPECT().CloseIdle(gomock.Any(), before).Return(int64(2), nil)
	svc := NewService(repo, aimocks.NewMockGenerator(ctrl))
	cnt, err := svc.CloseIdle(context.Background(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)
}
