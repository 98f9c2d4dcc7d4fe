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

import "github.com/ecodeclub/jobportal/internal/recommend/internal/domain"

type Recommendation struct {
	ID                  int64    `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Requirements        []string `json:"requirements"`
	Location            string   `json:"location"`
	JobType             string   `json:"jobType"`
	Salary              int64    `json:"salary"`
	Company             Company  `json:"company"`
	MatchScore          int      `json:"matchScore"`
	MatchingSkillsCount int      `json:"matchingSkillsCount"`
}

type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

func newRecommendation(r domain.Recommendation) Recommendation {
	return Recommendation{
		ID:           r.Job.ID,
		Title:        r.Job.Title,
		Description:  r.Job.Description,
		Requirements: r.Job.Requirements,
		Location:     r.Job.Location,
		JobType:      r.Job.JobType,
		Salary:       r.Job.Salary,
		Company: Company{
			ID:   r.Job.Company.ID,
			Name: r.Job.Company.Name,
			Logo: r.Job.Company.Logo,
		},
		MatchScore:          r.MatchScore,
		MatchingSkillsCount: r.MatchingSkillsCount,
	}
}
