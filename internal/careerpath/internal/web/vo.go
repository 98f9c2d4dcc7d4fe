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
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/domain"
)

type PlanReq struct {
	CurrentPosition string `json:"currentPosition"`
	TargetPosition  string `json:"targetPosition"`
	Timeframe       string `json:"timeframe"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type CareerPath struct {
	ID              int64       `json:"id"`
	CurrentPosition string      `json:"currentPosition"`
	TargetPosition  string      `json:"targetPosition"`
	Timeframe       string      `json:"timeframe"`
	Milestones      []Milestone `json:"milestones"`
	PathReport      string      `json:"pathReport"`
	IsCompleted     bool        `json:"isCompleted"`
	Ctime           int64       `json:"ctime"`
}

type Milestone struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	SkillsToAcquire     []string   `json:"skillsToAcquire"`
	EstimatedTimeMonths int        `json:"estimatedTimeMonths"`
	Resources           []Resource `json:"resources"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

func newCareerPath(p domain.CareerPath) CareerPath {
	return CareerPath{
		ID:              p.ID,
		CurrentPosition: p.CurrentPosition,
		TargetPosition:  p.TargetPosition,
		Timeframe:       string(p.Timeframe),
		Milestones: slice.Map(p.Milestones, func(idx int, src domain.Milestone) Milestone {
			return Milestone{
				Title:               src.Title,
				Description:         src.Description,
				SkillsToAcquire:     src.SkillsToAcquire,
				EstimatedTimeMonths: src.EstimatedTimeMonths,
				Resources: slice.Map(src.Resources, func(idx int, src domain.Resource) Resource {
					return Resource{Title: src.Title, URL: src.URL, Type: string(src.Type)}
				}),
			}
		}),
		PathReport:  p.PathReport,
		IsCompleted: p.IsCompleted,
		Ctime:       p.Ctime.UnixMilli(),
	}
}
