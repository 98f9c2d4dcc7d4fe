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

	"github.com/ecodeclub/jobportal/internal/careerpath/internal/domain"
)

const recommendation = "Focus on completing each milestone before moving to the next. The resources provided for " +
	"each milestone can help you acquire the necessary skills and knowledge."

func buildReport(p domain.CareerPath) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Career Path: %s to %s\n\n", p.CurrentPosition, p.TargetPosition))
	sb.WriteString("## Overview\n")
	sb.WriteString(fmt.Sprintf("This career path plan outlines the steps to progress from %s to %s over a %s period.\n\n",
		p.CurrentPosition, p.TargetPosition, p.Timeframe.Label()))
	sb.WriteString("## Milestones\n")
	for i, m := range p.Milestones {
		sb.WriteString(fmt.Sprintf("\n### Milestone %d: %s\n", i+1, m.Title))
		sb.WriteString(m.Description)
		sb.WriteString("\n\n**Skills to Acquire:**\n")
		for _, s := range m.SkillsToAcquire {
			sb.WriteString(fmt.Sprintf("- %s\n", s))
		}
		sb.WriteString(fmt.Sprintf("\n**Estimated Time:** %d months\n", m.EstimatedTimeMonths))
	}
	sb.WriteString("\n## Recommendations\n")
	sb.WriteString(recommendation)
	sb.WriteString("\n")
	return sb.String()
}
