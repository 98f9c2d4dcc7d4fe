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

import "github.com/ecodeclub/jobportal/internal/job/internal/domain"

type Job struct {
	ID           int64    `json:"id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	JobType      string   `json:"jobType"`
	Salary       int64    `json:"salary"`
	Company      Company  `json:"company"`
	Ctime        int64    `json:"ctime,omitempty"`
}

type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

func newJob(j domain.Job) Job {
	return Job{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		JobType:      j.JobType,
		Salary:       j.Salary,
		Company: Company{
			ID:   j.Company.ID,
			Name: j.Company.Name,
			Logo: j.Company.Logo,
		},
		Ctime: j.Ctime,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		JobType:      j.JobType,
		Salary:       j.Salary,
		Company: domain.Company{
			ID:   j.Company.ID,
			Name: j.Company.Name,
			Logo: j.Company.Logo,
		},
	}
}

type SaveReq struct {
	Job Job `json:"job"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type JobList struct {
	Total int64 `json:"total"`
	Jobs  []Job `json:"jobs"`
}
