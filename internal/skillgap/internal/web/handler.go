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

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/domain"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/skill-gap")
	g.POST("/analyze", ginx.BS[AnalyzeReq](h.Analyze))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
}

func (h *Handler) Analyze(ctx *ginx.Context, req AnalyzeReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Analyze(ctx, sess.Claims().Uid, domain.AnalysisRequest{
		TargetJobTitle:       req.TargetJobTitle,
		TargetJobDescription: req.TargetJobDescription,
		UserSkills:           req.UserSkills,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: newAnalysis(a)}, nil
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(res, func(idx int, src domain.Analysis) Analysis {
			return newAnalysis(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Detail(ctx, sess.Claims().Uid, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Data: newAnalysis(a)}, nil
	case errors.Is(err, service.ErrAnalysisNotFound):
		return notFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
