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
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/domain"
)

type AnalyzeReq struct {
	TargetJobTitle       string   `json:"targetJobTitle"`
	TargetJobDescription string   `json:"targetJobDescription"`
	UserSkills           []string `json:"userSkills"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Analysis struct {
	ID                   int64          `json:"id"`
	TargetJobTitle       string         `json:"targetJobTitle"`
	TargetJobDescription string         `json:"targetJobDescription"`
	UserSkills           []string       `json:"userSkills"`
	RequiredSkills       []string       `json:"requiredSkills"`
	MatchingSkills       []string       `json:"matchingSkills"`
	MissingSkills        []MissingSkill `json:"missingSkills"`
	AnalysisReport       string         `json:"analysisReport"`
	IsCompleted          bool           `json:"isCompleted"`
	Ctime                int64          `json:"ctime"`
}

type MissingSkill struct {
	Skill      string     `json:"skill"`
	Importance string     `json:"importance"`
	Resources  []Resource `json:"resources"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

func newAnalysis(a domain.Analysis) Analysis {
	return Analysis{
		ID:                   a.ID,
		TargetJobTitle:       a.TargetJobTitle,
		TargetJobDescription: a.TargetJobDescription,
		UserSkills:           a.UserSkills,
		RequiredSkills:       a.RequiredSkills,
		MatchingSkills:       a.MatchingSkills(),
		MissingSkills: slice.Map(a.MissingSkills, func(idx int, src domain.MissingSkill) MissingSkill {
			return MissingSkill{
				Skill:      src.Skill,
				Importance: string(src.Importance),
				Resources: slice.Map(src.Resources, func(idx int, src domain.Resource) Resource {
					return Resource{Title: src.Title, URL: src.URL, Type: string(src.Type)}
				}),
			}
		}),
		AnalysisReport: a.AnalysisReport,
		IsCompleted:    a.IsCompleted,
		Ctime:          a.Ctime.UnixMilli(),
	}
}
