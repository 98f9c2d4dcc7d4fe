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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobportal/internal/profile/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/profile")
	g.POST("/detail", ginx.S(h.Detail))
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/skills/sync", ginx.BS[SyncSkillsReq](h.SyncSkills))
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Get(ctx, sess.Claims().Uid)
	switch {
	case err == nil:
		return ginx.Result{Data: newProfile(p)}, nil
	case errors.Is(err, service.ErrProfileNotFound):
		return notFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Save(ctx, req.Profile.toDomain(sess.Claims().Uid))
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidInput):
		return ginx.Result{Code: invalidInputResult.Code, Msg: err.Error()}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) SyncSkills(ctx *ginx.Context, req SyncSkillsReq, sess session.Session) (ginx.Result, error) {
	skills, err := h.svc.SyncSkills(ctx, sess.Claims().Uid, req.Skills)
	switch {
	case err == nil:
		return ginx.Result{Data: SyncSkillsResp{Skills: skills}}, nil
	case errors.Is(err, service.ErrProfileNotFound):
		return notFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
