package web

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobportal/internal/coach/internal/domain"
	"github.com/ecodeclub/jobportal/internal/coach/internal/errs"
	"github.com/ecodeclub/jobportal/internal/coach/internal/service"
	coachmocks "github.com/ecodeclub/jobportal/internal/coach/mocks"
	"github.com/ecodeclub/jobportal/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = 123

func TestHandler_SendMessage(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      SendMessageReq
		wantResp test.Result[SendMessageResp]
	}{
		{
			name: "发送成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := coachmocks.NewMockService(ctrl)
				svc.EXPECT().SendMessage(gomock.Any(), int64(uid), "sn1", "hello").
					Return(domain.Message{Role: domain.RoleAssistant, Content: "hi"}, nil)
				return svc
			},
			req:      SendMessageReq{SN: "sn1", Message: "hello"},
			wantResp: test.Result[SendMessageResp]{Data: SendMessageResp{Response: "hi"}},
		},
		{
			name: "会话已经结束",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := coachmocks.NewMockService(ctrl)
				svc.EXPECT().SendMessage(gomock.Any(), int64(uid), "sn1", "hello").
					Return(domain.Message{}, service.ErrSessionClosed)
				return svc
			},
			req: SendMessageReq{SN: "sn1", Message: "hello"},
			wantResp: test.Result[SendMessageResp]{
				Code: errs.SessionClosed.Code,
				Msg:  errs.SessionClosed.Msg,
			},
		},
		{
			name: "会话不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := coachmocks.NewMockService(ctrl)
				svc.EXPECT().SendMessage(gomock.Any(), int64(uid), "sn2", "hello").
					Return(domain.Message{}, service.ErrSessionNotFound)
				return svc
			},
			req: SendMessageReq{SN: "sn2", Message: "hello"},
			wantResp: test.Result[SendMessageResp]{
				Code: errs.SessionNotFound.Code,
				Msg:  errs.SessionNotFound.Msg,
			},
		},
		{
			name: "消息为空",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := coachmocks.NewMockService(ctrl)
				svc.EXPECT().SendMessage(gomock.Any(), int64(uid), "sn1", "").
					Return(domain.Message{}, service.ErrInvalidInput)
				return svc
			},
			req: SendMessageReq{SN: "sn1"},
			wantResp: test.Result[SendMessageResp]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(NewHandler(tc.mock(ctrl)))
			req, err := http.NewRequest(http.MethodPost, "/coach/session/message", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[SendMessageResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Feedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := coachmocks.NewMockService(ctrl)
	svc.EXPECT().Feedback(gomock.Any(), int64(uid), "sn1", domain.Feedback{Rating: 9}).
		Return(service.ErrInvalidInput)
	server := newServer(NewHandler(svc))
	req, err := http.NewRequest(http.MethodPost, "/coach/session/feedback",
		iox.NewJSONReader(FeedbackReq{SN: "sn1", Rating: 9}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.InvalidInput.Code, recorder.MustScan().Code)
}

func newServer(hdl *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	hdl.PrivateRoutes(server)
	return server
}
