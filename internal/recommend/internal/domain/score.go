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
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/ecodeclub/jobportal/internal/job"
)

type Recommendation struct {
	Job job.Job
	// MatchScore 取值 [0, 100]
	MatchScore          int
	MatchingSkillsCount int
}

// DistinctSkills 去掉空白技能，并且忽略大小写去重
func DistinctSkills(skills []string) []string {
	res := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, s)
	}
	return res
}

type Scorer struct {
	skills   []string
	patterns []*regexp.Regexp
}

// NewScorer 每一个技能都是一个独立的、忽略大小写的字面量匹配
func NewScorer(skills []string) *Scorer {
	skills = DistinctSkills(skills)
	patterns := make([]*regexp.Regexp, 0, len(skills))
	for _, s := range skills {
		patterns = append(patterns, regexp.MustCompile("(?i)"+regexp.QuoteMeta(s)))
	}
	return &Scorer{skills: skills, patterns: patterns}
}

func (s *Scorer) Skills() []string {
	return s.skills
}

func (s *Scorer) Score(j job.Job) Recommendation {
	res := Recommendation{Job: j}
	if len(s.patterns) == 0 {
		return res
	}
	for _, p := range s.patterns {
		if s.matches(p, j) {
			res.MatchingSkillsCount++
		}
	}
	res.MatchScore = int(math.Round(float64(res.MatchingSkillsCount) / float64(len(s.patterns)) * 100))
	return res
}

func (s *Scorer) matches(p *regexp.Regexp, j job.Job) bool {
	if p.MatchString(j.Title) || p.MatchString(j.Description) {
		return true
	}
	for _, r := range j.Requirements {
		if p.MatchString(r) {
			return true
		}
	}
	return false
}

// Rank 只保留至少命中一个技能的职位，按照分数降序排列，分数相同的保持候选列表原本的顺序。
// 没有技能的时候没有任何职位能命中，返回空列表
func (s *Scorer) Rank(jobs []job.Job) []Recommendation {
	res := make([]Recommendation, 0, len(jobs))
	if len(s.patterns) == 0 {
		return res
	}
	for _, j := range jobs {
		r := s.Score(j)
		if r.MatchingSkillsCount == 0 {
			continue
		}
		res = append(res, r)
	}
	slices.SortStableFunc(res, func(a, b Recommendation) int {
		return b.MatchScore - a.MatchScore
	})
	return res
}
