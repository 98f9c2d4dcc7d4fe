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

package domain

import (
	"time"
)

type SessionType string

const (
	SessionTypeCareerAdvice       SessionType = "career_advice"
	SessionTypeResumeReview       SessionType = "resume_review"
	SessionTypeInterviewPrep      SessionType = "interview_prep"
	SessionTypeSkillGapAnalysis   SessionType = "skill_gap_analysis"
	SessionTypeCareerPathPlanning SessionType = "career_path_planning"
)

// ParseSessionType 未知类型按照 career_advice 处理
func ParseSessionType(s string) SessionType {
	switch t := SessionType(s); t {
	case SessionTypeResumeReview, SessionTypeInterviewPrep,
		SessionTypeSkillGapAnalysis, SessionTypeCareerPathPlanning:
		return t
	default:
		return SessionTypeCareerAdvice
	}
}

func (t SessionType) Greeting() string {
	switch t {
	case SessionTypeResumeReview:
		return "I'll help you review and improve your resume. Please share your current resume or tell me about your experience and skills."
	case SessionTypeInterviewPrep:
		return "I'll help you prepare for interviews. What type of position are you interviewing for?"
	case SessionTypeSkillGapAnalysis:
		return "I'll help analyze your skills compared to job requirements. What position are you targeting?"
	case SessionTypeCareerPathPlanning:
		return "I'll help plan your career path. What's your current position and where do you want to be in the future?"
	default:
		return "I'm your AI Career Coach. I can provide career advice, resume help, interview tips, and more. How can I assist you today?"
	}
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
	Ctime   time.Time
}

type Feedback struct {
	// Rating 0 代表还没有评价
	Rating  int
	Comment string
}

func (f Feedback) Valid() bool {
	return f.Rating >= 1 && f.Rating <= 5
}

type SessionStatus uint8

func (s SessionStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	SessionStatusUnknown SessionStatus = iota
	SessionStatusActive
	SessionStatusClosed
)

type Session struct {
	ID       int64
	SN       string
	Uid      int64
	Type     SessionType
	Messages []Message
	Feedback Feedback
	Status   SessionStatus
	Ctime    time.Time
	Utime    time.Time
}

func (s Session) Active() bool {
	return s.Status == SessionStatusActive
}

// RecentMessages 返回最后 n 条消息
func (s Session) RecentMessages(n int) []Message {
	if n <= 0 {
		return []Message{}
	}
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}
