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
	"errors"
	"math"
	"time"
)

var ErrQuestionIndexOutOfRange = errors.New("题目下标越界")

type InterviewType string

const (
	InterviewTypeBehavioral  InterviewType = "behavioral"
	InterviewTypeTechnical   InterviewType = "technical"
	InterviewTypeGeneral     InterviewType = "general"
	InterviewTypeJobSpecific InterviewType = "job_specific"
)

// ParseInterviewType 未知类型按照 general 处理
func ParseInterviewType(s string) InterviewType {
	switch t := InterviewType(s); t {
	case InterviewTypeBehavioral, InterviewTypeTechnical, InterviewTypeJobSpecific:
		return t
	default:
		return InterviewTypeGeneral
	}
}

const OverallFeedback = "You did well in the interview. Your responses were generally clear and relevant. " +
	"Focus on providing more specific examples and quantifiable achievements in future interviews."

var defaultQuestions = []string{
	"Tell me about yourself.",
	"Why are you interested in this position?",
	"Describe a challenging situation you faced at work and how you handled it.",
	"What are your strengths and weaknesses?",
	"Where do you see yourself in 5 years?",
}

// DefaultQuestions 每次返回新的切片
func DefaultQuestions() []Question {
	res := make([]Question, 0, len(defaultQuestions))
	for _, q := range defaultQuestions {
		res = append(res, Question{Question: q})
	}
	return res
}

type Question struct {
	Question string
	Answer   string
	Feedback string
	Score    int
}

func (q Question) Answered() bool {
	return q.Answer != ""
}

type Interview struct {
	ID              int64
	Uid             int64
	JobTitle        string
	Type            InterviewType
	Questions       []Question
	OverallFeedback string
	OverallScore    int
	IsCompleted     bool
	Ctime           time.Time
	Utime           time.Time
}

// Answer 记录某一题的回答，所有题目都回答之后面试结束
func (i *Interview) Answer(index int, answer, feedback string, score int) error {
	if index < 0 || index >= len(i.Questions) {
		return ErrQuestionIndexOutOfRange
	}
	i.Questions[index].Answer = answer
	i.Questions[index].Feedback = feedback
	i.Questions[index].Score = score
	if i.allAnswered() {
		i.complete()
	}
	return nil
}

func (i *Interview) allAnswered() bool {
	for _, q := range i.Questions {
		if !q.Answered() {
			return false
		}
	}
	return len(i.Questions) > 0
}

func (i *Interview) complete() {
	total := 0
	for _, q := range i.Questions {
		total += q.Score
	}
	i.IsCompleted = true
	i.OverallFeedback = OverallFeedback
	i.OverallScore = int(math.Round(float64(total) / float64(len(i.Questions))))
}
