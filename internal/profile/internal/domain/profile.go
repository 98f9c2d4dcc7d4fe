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
)

type CommunicationStyle string

const (
	CommunicationStyleFormal     CommunicationStyle = "formal"
	CommunicationStyleCasual     CommunicationStyle = "casual"
	CommunicationStyleDirect     CommunicationStyle = "direct"
	CommunicationStyleSupportive CommunicationStyle = "supportive"
)

func (s CommunicationStyle) Valid() bool {
	switch s {
	case CommunicationStyleFormal, CommunicationStyleCasual,
		CommunicationStyleDirect, CommunicationStyleSupportive:
		return true
	default:
		return false
	}
}

const DefaultCurrency = "USD"

type Profile struct {
	Uid                int64
	Fullname           string
	Bio                string
	Skills             []string
	Interests          []string
	PreferredJobTypes  []string
	PreferredLocations []string
	PreferredSalary    Salary
	CareerGoals        string
	CoachSettings      CoachSettings
	Ctime              int64
	Utime              int64
}

type Salary struct {
	Min      int64
	Max      int64
	Currency string
}

type CoachSettings struct {
	CommunicationStyle CommunicationStyle
	Notifications      Notifications
}

type Notifications struct {
	JobMatches       bool
	CareerTips       bool
	SessionReminders bool
}

// NormalizeSkills 去掉首尾空格和空字符串，忽略大小写去重，保留第一次出现的写法
func NormalizeSkills(skills []string) []string {
	res := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, s)
	}
	return res
}
