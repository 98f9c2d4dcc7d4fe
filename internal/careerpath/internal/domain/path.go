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

type Timeframe string

const (
	TimeframeShortTerm Timeframe = "short_term"
	TimeframeMidTerm   Timeframe = "mid_term"
	TimeframeLongTerm  Timeframe = "long_term"
)

// ParseTimeframe 不认识的都当作 mid_term
func ParseTimeframe(s string) Timeframe {
	t := Timeframe(s)
	switch t {
	case TimeframeShortTerm, TimeframeMidTerm, TimeframeLongTerm:
		return t
	default:
		return TimeframeMidTerm
	}
}

func (t Timeframe) Months() int {
	switch t {
	case TimeframeShortTerm:
		return 12
	case TimeframeLongTerm:
		return 60
	default:
		return 36
	}
}

// Label 用于报告，例如 mid term
func (t Timeframe) Label() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

type ResourceType string

const (
	ResourceTypeCourse ResourceType = "course"
	ResourceTypeBook   ResourceType = "book"
)

type Resource struct {
	Title string
	URL   string
	Type  ResourceType
}

type Milestone struct {
	Title               string
	Description         string
	SkillsToAcquire     []string
	EstimatedTimeMonths int
	Resources           []Resource
}

type PlanRequest struct {
	CurrentPosition string
	TargetPosition  string
	Timeframe       string
}

type CareerPath struct {
	ID              int64
	Uid             int64
	CurrentPosition string
	TargetPosition  string
	Timeframe       Timeframe
	Milestones      []Milestone
	PathReport      string
	IsCompleted     bool
	Ctime           time.Time
	Utime           time.Time
}

// TotalMonths 所有里程碑的时间之和
func (p CareerPath) TotalMonths() int {
	total := 0
	for _, m := range p.Milestones {
		total += m.EstimatedTimeMonths
	}
	return total
}

// SkillsToAcquire 按照里程碑的顺序汇总需要学习的技能
func (p CareerPath) SkillsToAcquire() []string {
	var res []string
	for _, m := range p.Milestones {
		res = append(res, m.SkillsToAcquire...)
	}
	return res
}
