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
	"math/rand/v2"

	"github.com/ecodeclub/jobportal/internal/skillgap/internal/domain"
)

// ImportanceFunc 给缺失的技能打上重要程度
type ImportanceFunc func(skill string) domain.Importance

// randomImportance 30% 是 critical，剩下的一半是 important，其余是 nice_to_have
func randomImportance(_ string) domain.Importance {
	if rand.Float64() < 0.3 {
		return domain.ImportanceCritical
	}
	if rand.Float64() < 0.5 {
		return domain.ImportanceImportant
	}
	return domain.ImportanceNiceToHave
}
