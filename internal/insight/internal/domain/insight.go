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

import "strings"

type Feature string

const (
	FeatureSkillGap   Feature = "skillGap"
	FeatureCareerPath Feature = "careerPath"
	FeatureInterview  Feature = "interview"
	FeatureResume     Feature = "resume"
)

type NextStep struct {
	Feature     Feature
	Title       string
	Description string
}

// Activity 用户在各个功能里面留下的数据
type Activity struct {
	ProfileSkills  []string
	Resumes        int
	Analyses       int
	Paths          int
	Interviews     int
	ResumeSkills   [][]string
	RequiredSkills [][]string
	PathSkills     [][]string
}

// Suggestions 汇总各个功能里面出现过的技能，去掉用户已经掌握的。
// 忽略大小写，保留第一次出现的写法和顺序。
func (a Activity) Suggestions() []string {
	seen := make(map[string]struct{}, len(a.ProfileSkills))
	for _, s := range a.ProfileSkills {
		seen[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	res := make([]string, 0, 16)
	for _, group := range [][][]string{a.ResumeSkills, a.PathSkills, a.RequiredSkills} {
		for _, skills := range group {
			for _, s := range skills {
				s = strings.TrimSpace(s)
				key := strings.ToLower(s)
				if s == "" {
					continue
				}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				res = append(res, s)
			}
		}
	}
	return res
}

func (a Activity) NextSteps() []NextStep {
	res := make([]NextStep, 0, 4)
	if a.Resumes > 0 && a.Analyses == 0 {
		res = append(res, NextStep{
			Feature:     FeatureSkillGap,
			Title:       "Analyze your skill gaps",
			Description: "Based on your resume, we recommend analyzing your skill gaps to identify areas for improvement.",
		})
	}
	if a.Analyses > 0 && a.Paths == 0 {
		res = append(res, NextStep{
			Feature:     FeatureCareerPath,
			Title:       "Create a career path plan",
			Description: "Now that you know your skill gaps, create a career path plan to address them.",
		})
	}
	if a.Paths > 0 && a.Interviews == 0 {
		res = append(res, NextStep{
			Feature:     FeatureInterview,
			Title:       "Practice with a mock interview",
			Description: "Prepare for your next career step with a mock interview.",
		})
	}
	if len(a.ProfileSkills) > 0 && a.Resumes == 0 {
		res = append(res, NextStep{
			Feature:     FeatureResume,
			Title:       "Create a resume",
			Description: "You have skills listed in your profile. Create a resume to showcase them.",
		})
	}
	return res
}
