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
	"github.com/ecodeclub/jobportal/internal/interview/internal/domain"
	"github.com/ecodeclub/jobportal/internal/interview/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interview")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/answer", ginx.BS[AnswerReq](h.Answer))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	i, err := h.svc.Create(ctx, sess.Claims().Uid, req.JobTitle, req.InterviewType)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newInterview(i)}, nil
}

func (h *Handler) Answer(ctx *ginx.Context, req AnswerReq, sess session.Session) (ginx.Result, error) {
	i, err := h.svc.Answer(ctx, sess.Claims().Uid, req.InterviewID, req.QuestionIndex, req.Answer)
	switch {
	case err == nil:
		return ginx.Result{Data: newAnswerResp(i, req.QuestionIndex)}, nil
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrInterviewNotFound):
		return notFoundResult, nil
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
		Data: slice.Map(res, func(idx int, src domain.Interview) Interview {
			return newInterview(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	i, err := h.svc.Detail(ctx, sess.Claims().Uid, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Data: newInterview(i)}, nil
	case errors.Is(err, service.ErrInterviewNotFound):
		return notFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
