package generator

import (
	"context"
	"testing"

	"github.com/ecodeclub/jobportal/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordBuilder struct {
	name  string
	trace *[]string
}

func (r recordBuilder) Next(next Generator) Generator {
	return GenerateFunc(func(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error) {
		*r.trace = append(*r.trace, r.name)
		return next.Generate(ctx, req)
	})
}

func TestChain(t *testing.T) {
	var trace []string
	root := GenerateFunc(func(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error) {
		trace = append(trace, "root")
		return domain.GenerateResponse{Answer: req.Prompt}, nil
	})
	g := Chain(root,
		recordBuilder{name: "first", trace: &trace},
		recordBuilder{name: "second", trace: &trace})
	resp, err := g.Generate(context.Background(), domain.GenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", resp.Answer)
	assert.Equal(t, []string{"first", "second", "root"}, trace)
}
