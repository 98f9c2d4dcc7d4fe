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

package openai

import (
	"context"

	"github.com/ecodeclub/jobportal/internal/ai/internal/domain"
	"github.com/ecodeclub/jobportal/internal/ai/internal/service/generator"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Generator 兼容 OpenAI 协议的平台都可以用，例如阿里云百炼、DeepSeek
type Generator struct {
	client *openai.Client
	model  string
}

var _ generator.Generator = &Generator{}

func NewGenerator(baseURL, apiKey, model string) *Generator {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Generator{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (g *Generator) Generate(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResponse, error) {
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(g.messages(req)),
		Model:    openai.F(g.model),
	}
	completion, err := g.client.Chat.Completions.New(ctx, params)
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

func (g *Generator) messages(req domain.GenerateRequest) []openai.ChatCompletionMessageParamUnion {
	res := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+1)
	for _, msg := range req.History {
		switch msg.Role {
		case domain.RoleSystem:
			res = append(res, openai.SystemMessage(msg.Content))
		case domain.RoleAssistant:
			res = append(res, openai.AssistantMessage(msg.Content))
		default:
			res = append(res, openai.UserMessage(msg.Content))
		}
	}
	return append(res, openai.UserMessage(req.Prompt))
}
