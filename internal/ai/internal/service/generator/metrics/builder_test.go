package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/jobportal/internal/ai/internal/domain"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_Next(t *testing.T) {
	b := NewBuilder("test")
	// 重复注册也不会 panic
	b2 := NewBuilder("test")
	assert.Equal(t, b.summaryVec, b2.summaryVec)

	g := b.Next(generator.GenerateFunc(func(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error) {
		if req.Prompt == "" {
			return domain.GenerateResponse{}, errors.New("mock error")
		}
		return domain.GenerateResponse{Answer: "ok"}, nil
	}))
	_, err := g.Generate(context.Background(), domain.GenerateRequest{Biz: "metrics_test", Prompt: "hi"})
	assert.NoError(t, err)
	_, err = g.Generate(context.Background(), domain.GenerateRequest{Biz: "metrics_test"})
	assert.Error(t, err)
	assert.Equal(t, 2, testutil.CollectAndCount(b.summaryVec))
}
