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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobportal/internal/insight/internal/domain"
	"github.com/ecodeclub/jobportal/internal/insight/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/insight")
	g.POST("/skill-suggestions", ginx.S(h.Suggestions))
	g.POST("/next-steps", ginx.S(h.NextSteps))
}

func (h *Handler) Suggestions(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Suggestions(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: res}, nil
}

func (h *Handler) NextSteps(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.NextSteps(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(res, func(idx int, src domain.NextStep) NextStep {
			return NextStep{
				Feature:     string(src.Feature),
				Title:       src.Title,
				Description: src.Description,
			}
		}),
	}, nil
}
