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
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/domain"
	"github.com/ecodeclub/jobportal/internal/careerpath/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/career-path")
	g.POST("/plan", ginx.BS[PlanReq](h.Plan))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
}

func (h *Handler) Plan(ctx *ginx.Context, req PlanReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Plan(ctx, sess.Claims().Uid, domain.PlanRequest{
		CurrentPosition: req.CurrentPosition,
		TargetPosition:  req.TargetPosition,
		Timeframe:       req.Timeframe,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: newCareerPath(p)}, nil
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
		Data: slice.Map(res, func(idx int, src domain.CareerPath) CareerPath {
			return newCareerPath(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, sess.Claims().Uid, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Data: newCareerPath(p)}, nil
	case errors.Is(err, service.ErrPathNotFound):
		return notFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
