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

import "github.com/ecodeclub/jobportal/internal/profile/internal/domain"

type Profile struct {
	Fullname           string        `json:"fullname"`
	Bio                string        `json:"bio"`
	Skills             []string      `json:"skills"`
	Interests          []string      `json:"interests"`
	PreferredJobTypes  []string      `json:"preferredJobTypes"`
	PreferredLocations []string      `json:"preferredLocations"`
	PreferredSalary    Salary        `json:"preferredSalary"`
	CareerGoals        string        `json:"careerGoals"`
	CoachSettings      CoachSettings `json:"aiCoachSettings"`
	Utime              int64         `json:"utime"`
}

type Salary struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type CoachSettings struct {
	CommunicationStyle string        `json:"preferredCommunicationStyle"`
	Notifications      Notifications `json:"notificationPreferences"`
}

type Notifications struct {
	JobMatches       bool `json:"jobMatches"`
	CareerTips       bool `json:"careerTips"`
	SessionReminders bool `json:"sessionReminders"`
}

func newProfile(p domain.Profile) Profile {
	return Profile{
		Fullname:           p.Fullname,
		Bio:                p.Bio,
		Skills:             p.Skills,
		Interests:          p.Interests,
		PreferredJobTypes:  p.PreferredJobTypes,
		PreferredLocations: p.PreferredLocations,
		PreferredSalary: Salary{
			Min:      p.PreferredSalary.Min,
			Max:      p.PreferredSalary.Max,
			Currency: p.PreferredSalary.Currency,
		},
		CareerGoals: p.CareerGoals,
		CoachSettings: CoachSettings{
			CommunicationStyle: string(p.CoachSettings.CommunicationStyle),
			Notifications: Notifications{
				JobMatches:       p.CoachSettings.Notifications.JobMatches,
				CareerTips:       p.CoachSettings.Notifications.CareerTips,
				SessionReminders: p.CoachSettings.Notifications.SessionReminders,
			},
		},
		Utime: p.Utime,
	}
}

func (p Profile) toDomain(uid int64) domain.Profile {
	return domain.Profile{
		Uid:                uid,
		Fullname:           p.Fullname,
		Bio:                p.Bio,
		Skills:             p.Skills,
		Interests:          p.Interests,
		PreferredJobTypes:  p.PreferredJobTypes,
		PreferredLocations: p.PreferredLocations,
		PreferredSalary: domain.Salary{
			Min:      p.PreferredSalary.Min,
			Max:      p.PreferredSalary.Max,
			Currency: p.PreferredSalary.Currency,
		},
		CareerGoals: p.CareerGoals,
		CoachSettings: domain.CoachSettings{
			CommunicationStyle: domain.CommunicationStyle(p.CoachSettings.CommunicationStyle),
			Notifications: domain.Notifications{
				JobMatches:       p.CoachSettings.Notifications.JobMatches,
				CareerTips:       p.CoachSettings.Notifications.CareerTips,
				SessionReminders: p.CoachSettings.Notifications.SessionReminders,
			},
		},
	}
}

type SaveReq struct {
	Profile Profile `json:"profile"`
}

type SyncSkillsReq struct {
	Skills []string `json:"skills"`
}

type SyncSkillsResp struct {
	Skills []string `json:"skills"`
}
