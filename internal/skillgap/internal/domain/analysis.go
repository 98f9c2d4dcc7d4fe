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
	"strings"
	"time"
)

type Importance string

const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice_to_have"
)

func (i Importance) Valid() bool {
	switch i {
	case ImportanceCritical, ImportanceImportant, ImportanceNiceToHave:
		return true
	default:
		return false
	}
}

type ResourceType string

const (
	ResourceTypeCourse  ResourceType = "course"
	ResourceTypeArticle ResourceType = "article"
)

type Resource struct {
	Title string
	URL   string
	Type  ResourceType
}

type MissingSkill struct {
	Skill      string
	Importance Importance
	Resources  []Resource
}

type AnalysisRequest struct {
	TargetJobTitle       string
	TargetJobDescription string
	UserSkills           []string
}

type Analysis struct {
	ID                   int64
	Uid                  int64
	TargetJobTitle       string
	TargetJobDescription string
	UserSkills           []string
	RequiredSkills       []string
	MissingSkills        []MissingSkill
	AnalysisReport       string
	IsCompleted          bool
	Ctime                time.Time
	Utime                time.Time
}

// MatchingSkills 用户已经掌握的必备技能，顺序和 RequiredSkills 保持一致
func (a Analysis) MatchingSkills() []string {
	missing := make(map[string]struct{}, len(a.MissingSkills))
	for _, m := range a.MissingSkills {
		missing[m.Skill] = struct{}{}
	}
	res := make([]string, 0, len(a.RequiredSkills))
	for _, s := range a.RequiredSkills {
		if _, ok := missing[s]; !ok {
			res = append(res, s)
		}
	}
	return res
}

// Diff 把 required 划分为 matching 和 missing 两部分，比较的时候忽略大小写
// 每个必备技能只会出现在其中一个里面，顺序和 required 保持一致
func Diff(required, userSkills []string) (matching, missing []string) {
	owned := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		owned[strings.ToLower(s)] = struct{}{}
	}
	matching = make([]string, 0, len(required))
	missing = make([]string, 0, len(required))
	for _, s := range required {
		if _, ok := owned[strings.ToLower(s)]; ok {
			matching = append(matching, s)
			continue
		}
		missing = append(missing, s)
	}
	return matching, missing
}

// Slug 转小写，连续的空白替换为一个 -
func Slug(skill string) string {
	return strings.Join(strings.Fields(strings.ToLower(skill)), "-")
}
