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
	"github.com/ecodeclub/jobportal/internal/coach/internal/domain"
	"github.com/ecodeclub/jobportal/internal/coach/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coach/session")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS[SNReq](h.Detail))
	g.POST("/message", ginx.BS[SendMessageReq](h.SendMessage))
	g.POST("/close", ginx.BS[SNReq](h.Close))
	g.POST("/feedback", ginx.BS[FeedbackReq](h.Feedback))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Create(ctx, sess.Claims().Uid, req.SessionType)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSession(s)}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(res, func(idx int, src domain.Session) Session {
			return newSession(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req SNReq, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Detail(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: newSession(s)}, nil
}

func (h *Handler) SendMessage(ctx *ginx.Context, req SendMessageReq, sess session.Session) (ginx.Result, error) {
	msg, err := h.svc.SendMessage(ctx, sess.Claims().Uid, req.SN, req.Message)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: SendMessageResp{Response: msg.Content}}, nil
}

func (h *Handler) Close(ctx *ginx.Context, req SNReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Close(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Feedback(ctx *ginx.Context, req FeedbackReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Feedback(ctx, sess.Claims().Uid, req.SN, domain.Feedback{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrSessionNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrSessionClosed):
		return sessionClosedResult, nil
	default:
		return systemErrorResult, err
	}
}
