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

package canned

import (
	"context"
	"strings"

	"github.com/ecodeclub/jobportal/internal/ai/internal/domain"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator"
)

const fallbackAnswer = "That's a great question. To give you the most relevant advice, could you share more about your " +
	"current role, the kind of position you're aiming for, and what you've already tried? " +
	"With that context I can suggest concrete next steps for your career."

type rule struct {
	keywords []string
	answer   string
}

func (r rule) match(prompt string) bool {
	for _, k := range r.keywords {
		if strings.Contains(prompt, k) {
			return true
		}
	}
	return false
}

// Generator 在没有配置任何大模型的时候使用
// 按照关键字返回固定的回答，大小写敏感，命中第一个规则就返回
type Generator struct {
	rules    []rule
	fallback string
}

var _ generator.Generator = &Generator{}

func NewGenerator() *Generator {
	return &Generator{
		rules: []rule{
			{
				keywords: []string{"resume", "CV"},
				answer: "A strong resume is tailored to each role. Lead with a short summary of your value, " +
					"quantify your achievements with numbers where you can, mirror the keywords from the job " +
					"description, and keep the layout clean so it is easy to scan in a few seconds.",
			},
			{
				keywords: []string{"interview"},
				answer: "To prepare for interviews, research the company and the role, practise answering common " +
					"questions out loud, and use the STAR method (Situation, Task, Action, Result) to structure your " +
					"stories. Prepare a few thoughtful questions to ask the interviewer as well.",
			},
			{
				keywords: []string{"skill", "gap"},
				answer: "Closing a skill gap starts with knowing exactly what is missing. Compare your skills with " +
					"the requirements of the roles you want, pick the one or two gaps with the biggest impact, and " +
					"build them through focused courses and small hands-on projects you can show to employers.",
			},
			{
				keywords: []string{"career path", "roadmap"},
				answer: "A good career roadmap breaks a long term goal into milestones. Define where you want to be, " +
					"identify the intermediate roles and skills that lead there, set a realistic timeline for each " +
					"step, and review your progress every few months.",
			},
		},
		fallback: fallbackAnswer,
	}
}

func (g *Generator) Generate(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error) {
	for _, r := range g.rules {
		if r.match(req.Prompt) {
			return domain.GenerateResponse{Answer: r.answer}, nil
		}
	}
	return domain.GenerateResponse{Answer: g.fallback}, nil
}
