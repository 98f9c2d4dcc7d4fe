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
	"github.com/ecodeclub/jobportal/internal/resume/internal/domain"
	"github.com/ecodeclub/jobportal/internal/resume/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/resume/templates", ginx.W(h.Templates))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/resume")
	g.POST("/template/save", ginx.B[SaveTemplateReq](h.SaveTemplate))
	g.POST("/generate", ginx.BS[GenerateReq](h.Generate))
	g.POST("/list", ginx.S(h.List))
}

func (h *Handler) Templates(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Templates(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(res, func(idx int, src domain.Template) Template {
			return newTemplate(src)
		}),
	}, nil
}

func (h *Handler) SaveTemplate(ctx *ginx.Context, req SaveTemplateReq) (ginx.Result, error) {
	id, err := h.svc.SaveTemplate(ctx, req.Template.toDomain())
	switch {
	case err == nil:
		return ginx.Result{Data: id}, nil
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Generate(ctx *ginx.Context, req GenerateReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Generate(ctx, sess.Claims().Uid, req.TemplateID, req.UserData)
	switch {
	case err == nil:
		return ginx.Result{Data: newResume(r)}, nil
	case errors.Is(err, service.ErrTemplateNotFound):
		return templateNotFoundResult, nil
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
		Data: slice.Map(res, func(idx int, src domain.Resume) Resume {
			return newResume(src)
		}),
	}, nil
}
