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

package sngenerator

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Generator 生成对外暴露的序列号，格式为 毫秒时间戳 + uid 末四位 + shortuuid
type Generator struct {
	now  func() time.Time
	uuid func() string
}

func NewGeneratorWith(now func() time.Time, uuid func() string) *Generator {
	return &Generator{now: now, uuid: uuid}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, shortuuid.New)
}

func (g *Generator) Generate(uid int64) string {
	if uid < 0 {
		uid = -uid
	}
	return fmt.Sprintf("%d%04d%s", g.now().UnixMilli(), uid%10000, g.uuid())
}
