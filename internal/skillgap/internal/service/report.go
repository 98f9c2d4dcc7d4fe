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

package service

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/jobportal/internal/skillgap/internal/domain"
)

const recommendation = "Based on your current skill set, we recommend focusing on acquiring the missing skills, " +
	"particularly those marked as 'critical' or 'important'. The resources provided for each skill can help you " +
	"get started on your learning journey."

func buildReport(a domain.Analysis) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Skill Gap Analysis for %s\n\n", a.TargetJobTitle))
	sb.WriteString("## Your Current Skills\n")
	sb.WriteString(strings.Join(a.UserSkills, ", "))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("## Required Skills for %s\n", a.TargetJobTitle))
	sb.WriteString(strings.Join(a.RequiredSkills, ", "))
	sb.WriteString("\n\n")
	sb.WriteString("## Missing Skills\n")
	for _, m := range a.MissingSkills {
		sb.WriteString(fmt.Sprintf("- %s (%s)\n", m.Skill, m.Importance))
	}
	sb.WriteString("\n## Recommendations\n")
	sb.WriteString(recommendation)
	sb.WriteString("\n")
	return sb.String()
}
