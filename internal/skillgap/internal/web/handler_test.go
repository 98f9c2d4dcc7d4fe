package web

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/domain"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/errs"
	"github.com/ecodeclub/jobportal/internal/skillgap/internal/service"
	skillgapmocks "github.com/ecodeclub/jobportal/internal/skillgap/mocks"
	"github.com/ecodeclub/jobportal/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = 123

func TestHandler_Analyze(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      AnalyzeReq
		wantCode int
		wantResp test.Result[Analysis]
	}{
		{
			name: "分析成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := skillgapmocks.NewMockService(ctrl)
				svc.EXPECT().Analyze(gomock.Any(), int64(uid), domain.AnalysisRequest{
					TargetJobTitle: "UX Designer",
					UserSkills:     []string{"Figma"},
				}).Return(domain.Analysis{
					ID:             1,
					Uid:            uid,
					TargetJobTitle: "UX Designer",
					UserSkills:     []string{"Figma"},
					RequiredSkills: []string{"Figma", "Typography"},
					MissingSkills: []domain.MissingSkill{
						{Skill: "Typography", Importance: domain.ImportanceImportant, Resources: []domain.Resource{}},
					},
					AnalysisReport: "report",
					IsCompleted:    true,
					Ctime:          time.UnixMilli(1000),
				}, nil)
				return svc
			},
			req: AnalyzeReq{
				TargetJobTitle: "UX Designer",
				UserSkills:     []string{"Figma"},
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[Analysis]{
				Data: Analysis{
					ID:             1,
					TargetJobTitle: "UX Designer",
					UserSkills:     []string{"Figma"},
					RequiredSkills: []string{"Figma", "Typography"},
					MatchingSkills: []string{"Figma"},
					MissingSkills: []MissingSkill{
						{Skill: "Typography", Importance: "important", Resources: []Resource{}},
					},
					AnalysisReport: "report",
					IsCompleted:    true,
					Ctime:          1000,
				},
			},
		},
		{
			name: "目标职位为空",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := skillgapmocks.NewMockService(ctrl)
				svc.EXPECT().Analyze(gomock.Any(), int64(uid), gomock.Any()).
					Return(domain.Analysis{}, service.ErrInvalidInput)
				return svc
			},
			req:      AnalyzeReq{},
			wantCode: http.StatusOK,
			wantResp: test.Result[Analysis]{
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
			req, err := http.NewRequest(http.MethodPost, "/skill-gap/analyze", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Analysis]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantRes  int
	}{
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := skillgapmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(uid), int64(2)).
					Return(domain.Analysis{}, service.ErrAnalysisNotFound)
				return svc
			},
			wantCode: http.StatusOK,
			wantRes:  errs.AnalysisNotFound.Code,
		},
		{
			name: "存储失败",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := skillgapmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(uid), int64(2)).
					Return(domain.Analysis{}, errors.New("mock db error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(NewHandler(tc.mock(ctrl)))
			req, err := http.NewRequest(http.MethodPost, "/skill-gap/detail", iox.NewJSONReader(IDReq{ID: 2}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Analysis]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == http.StatusOK {
				assert.Equal(t, tc.wantRes, recorder.MustScan().Code)
			}
		})
	}
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
