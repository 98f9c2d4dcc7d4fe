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
	"github.com/ecodeclub/jobportal/internal/interview/internal/domain"
)

type CreateReq struct {
	JobTitle      string `json:"jobTitle"`
	InterviewType string `json:"interviewType"`
}

type AnswerReq struct {
	InterviewID   int64  `json:"interviewId"`
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Interview struct {
	ID              int64      `json:"id"`
	JobTitle        string     `json:"jobTitle"`
	InterviewType   string     `json:"interviewType"`
	Questions       []Question `json:"questions"`
	OverallFeedback string     `json:"overallFeedback"`
	OverallScore    int        `json:"overallScore"`
	IsCompleted     bool       `json:"isCompleted"`
	Ctime           int64      `json:"ctime"`
}

type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Feedback string `json:"feedback"`
	Score    int    `json:"score"`
}

type AnswerResp struct {
	Feedback    string `json:"feedback"`
	Score       int    `json:"score"`
	IsCompleted bool   `json:"isCompleted"`
	// 面试结束之后才有
	OverallFeedback string `json:"overallFeedback,omitempty"`
	OverallScore    int    `json:"overallScore,omitempty"`
}

func newInterview(i domain.Interview) Interview {
	return Interview{
		ID:            i.ID,
		JobTitle:      i.JobTitle,
		InterviewType: string(i.Type),
		Questions: slice.Map(i.Questions, func(idx int, src domain.Question) Question {
			return Question{
				Question: src.Question,
				Answer:   src.Answer,
				Feedback: src.Feedback,
				Score:    src.Score,
			}
		}),
		OverallFeedback: i.OverallFeedback,
		OverallScore:    i.OverallScore,
		IsCompleted:     i.IsCompleted,
		Ctime:           i.Ctime.UnixMilli(),
	}
}

func newAnswerResp(i domain.Interview, index int) AnswerResp {
	q := i.Questions[index]
	resp := AnswerResp{
		Feedback:    q.Feedback,
		Score:       q.Score,
		IsCompleted: i.IsCompleted,
	}
	if i.IsCompleted {
		resp.OverallFeedback = i.OverallFeedback
		resp.OverallScore = i.OverallScore
	}
	return resp
}
