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

import "fmt"

const minMilestones = 3

// PlanMilestones 每 12 个月一个里程碑，至少 3 个
// 除了最后一个，每个里程碑的时间都是 totalMonths / count 向下取整，剩下的都归最后一个
func PlanMilestones(target string, totalMonths int) []Milestone {
	count := max(minMilestones, (totalMonths+11)/12)
	per := totalMonths / count
	res := make([]Milestone, 0, count)
	for i := 0; i < count; i++ {
		m := Milestone{
			Title:       fmt.Sprintf("Step %d towards %s", i+1, target),
			Description: fmt.Sprintf("This milestone focuses on building the foundation needed to progress towards %s.", target),
			SkillsToAcquire: []string{
				fmt.Sprintf("Skill %d for %s", i*3+1, target),
				fmt.Sprintf("Skill %d for %s", i*3+2, target),
				fmt.Sprintf("Skill %d for %s", i*3+3, target),
			},
			EstimatedTimeMonths: per,
			Resources: []Resource{
				{
					Title: fmt.Sprintf("Resource 1 for Milestone %d", i+1),
					URL:   "https://example.com/resource1",
					Type:  ResourceTypeCourse,
				},
				{
					Title: fmt.Sprintf("Resource 2 for Milestone %d", i+1),
					URL:   "https://example.com/resource2",
					Type:  ResourceTypeBook,
				},
			},
		}
		if i == count-1 {
			m.Title = target
			m.EstimatedTimeMonths = totalMonths - i*per
		}
		res = append(res, m)
	}
	return res
}
