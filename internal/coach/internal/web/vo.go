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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobportal/internal/coach/internal/domain"
)

type CreateReq struct {
	SessionType string `json:"sessionType"`
}

type SNReq struct {
	SN string `json:"sn"`
}

type SendMessageReq struct {
	SN      string `json:"sn"`
	Message string `json:"message"`
}

type FeedbackReq struct {
	SN      string `json:"sn"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type Session struct {
	SN          string    `json:"sn"`
	SessionType string    `json:"sessionType"`
	Messages    []Message `json:"messages"`
	Feedback    Feedback  `json:"feedback"`
	IsActive    bool      `json:"isActive"`
	Ctime       int64     `json:"ctime"`
	Utime       int64     `json:"utime"`
}

type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

type Feedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type SendMessageResp struct {
	Response string `json:"response"`
}

func newSession(s domain.Session) Session {
	return Session{
		SN:          s.SN,
		SessionType: string(s.Type),
		Messages: slice.Map(s.Messages, func(idx int, src domain.Message) Message {
			return newMessage(src)
		}),
		Feedback: Feedback{
			Rating:  s.Feedback.Rating,
			Comment: s.Feedback.Comment,
		},
		IsActive: s.Active(),
		Ctime:    s.Ctime.UnixMilli(),
		Utime:    s.Utime.UnixMilli(),
	}
}

func newMessage(m domain.Message) Message {
	return Message{
		Role:      string(m.Role),
		Content:   m.Content,
		Timestamp: m.Ctime.UnixMilli(),
	}
}
