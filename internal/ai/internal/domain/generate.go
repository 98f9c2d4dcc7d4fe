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

package domain

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message 对话中的一条消息
type Message struct {
	Role    Role
	Content string
}

// 各个业务方调用 AI 时使用的 biz
const (
	BizCoachChat         = "coach_chat"
	BizInterviewFeedback = "interview_feedback"
)

type GenerateRequest struct {
	Uid int64
	// 请求 id，方便排查问题
	Tid string
	Biz string
	// 本次的输入
	Prompt string
	// 上下文，不包含 Prompt，按照时间先后排列
	History []Message
}

type GenerateResponse struct {
	// 花费的 token，罐头回复不消耗 token
	Tokens int64
	Answer string
}

const (
	ProviderCanned = "canned"
	ProviderOpenAI = "openai"
	ProviderZhipu  = "zhipu"
)

// Config 对应配置文件里面的 ai 部分
type Config struct {
	// 为空的时候使用罐头回复
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"apiKey"`
	BaseURL  string `yaml:"baseURL"`
	Model    string `yaml:"model"`
}
