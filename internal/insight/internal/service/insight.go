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
	"context"
	"errors"

	"github.com/ecodeclub/jobportal/internal/careerpath"
	"github.com/ecodeclub/jobportal/internal/insight/internal/domain"
	"github.com/ecodeclub/jobportal/internal/interview"
	"github.com/ecodeclub/jobportal/internal/profile"
	"github.com/ecodeclub/jobportal/internal/resume"
	"github.com/ecodeclub/jobportal/internal/skillgap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./insight.go -destination=../../mocks/insight.mock.go -package=insightmocks -typed=true Service
type Service interface {
	// Suggestions 推荐用户学习的技能
	Suggestions(ctx context.Context, uid int64) ([]string, error)
	NextSteps(ctx context.Context, uid int64) ([]domain.NextStep, error)
}

type service struct {
	profileSvc    profile.Service
	skillGapSvc   skillgap.Service
	careerPathSvc careerpath.Service
	interviewSvc  interview.Service
	resumeSvc     resume.Service
}

func NewService(profileSvc profile.Service,
	skillGapSvc skillgap.Service,
	careerPathSvc careerpath.Service,
	interviewSvc interview.Service,
	resumeSvc resume.Service) Service {
	return &service{
		profileSvc:    profileSvc,
		skillGapSvc:   skillGapSvc,
		careerPathSvc: careerPathSvc,
		interviewSvc:  interviewSvc,
		resumeSvc:     resumeSvc,
	}
}

func (s *service) Suggestions(ctx context.Context, uid int64) ([]string, error) {
	a, err := s.activity(ctx, uid)
	if err != nil {
		return nil, err
	}
	return a.Suggestions(), nil
}

func (s *service) NextSteps(ctx context.Context, uid int64) ([]domain.NextStep, error) {
	a, err := s.activity(ctx, uid)
	if err != nil {
		return nil, err
	}
	return a.NextSteps(), nil
}

func (s *service) activity(ctx context.Context, uid int64) (domain.Activity, error) {
	var (
		eg         errgroup.Group
		p          profile.Profile
		analyses   []skillgap.Analysis
		paths      []careerpath.CareerPath
		interviews []interview.Interview
		resumes    []resume.Resume
	)
	eg.Go(func() error {
		var err error
		p, err = s.profileSvc.Get(ctx, uid)
		// 没有个人资料就当作没有技能
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		var err error
		analyses, err = s.skillGapSvc.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		paths, err = s.careerPathSvc.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		interviews, err = s.interviewSvc.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		resumes, err = s.resumeSvc.List(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Activity{}, err
	}

	a := domain.Activity{
		ProfileSkills:  p.Skills,
		Resumes:        len(resumes),
		Analyses:       len(analyses),
		Paths:          len(paths),
		Interviews:     len(interviews),
		ResumeSkills:   make([][]string, 0, len(resumes)),
		RequiredSkills: make([][]string, 0, len(analyses)),
		PathSkills:     make([][]string, 0, len(paths)),
	}
	for _, r := range resumes {
		a.ResumeSkills = append(a.ResumeSkills, resumeSkills(r))
	}
	for _, an := range analyses {
		a.RequiredSkills = append(a.RequiredSkills, an.RequiredSkills)
	}
	for _, cp := range paths {
		a.PathSkills = append(a.PathSkills, cp.SkillsToAcquire())
	}
	return a, nil
}

// resumeSkills 简历内容里面的 skills 字段
func resumeSkills(r resume.Resume) []string {
	raw, ok := r.Content["skills"].([]any)
	if !ok {
		return nil
	}
	res := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			res = append(res, s)
		}
	}
	return res
}
