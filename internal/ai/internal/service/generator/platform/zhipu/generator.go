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

package zhipu

import (
	"context"

	"github.com/ecodeclub/jobportal/internal/ai/internal/domain"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator"
	"github.com/yankeguo/zhipu"
)

type Generator struct {
	client *zhipu.Client
	model  string
}

var _ generator.Generator = &Generator{}

func NewGenerator(apiKey, model string) (*Generator, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Generator{
		client: client,
		model:  model,
	}, nil
}

func (g *Generator) Generate(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error) {
	completion, err := g.buildReq(req).Do(ctx)
	if err != nil {
		return domain.GenerateResponse{}, err
	}
	resp := domain.GenerateResponse{
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (g *Generator) buildReq(req domain.GenerateRequest) *zhipu.ChatCompletionService {
	svc := g.client.ChatCompletion(g.model)
	for _, msg := range req.History {
		svc = svc.AddMessage(zhipu.ChatCompletionMessage{
			Role:    g.role(msg.Role),
			Content: msg.Content,
		})
	}
	return svc.AddMessage(zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Prompt,
	})
}

func (g *Generator) role(r domain.Role) string {
	switch r {
	case domain.RoleSystem:
		return zhipu.RoleSystem
	case domain.RoleAssistant:
		return zhipu.RoleAssistant
	default:
		return zhipu.RoleUser
	}
}
