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

import "strings"

// Bucket 职位标题里面包含任何一个关键字，就认为需要 Skills
type Bucket struct {
	Keywords []string `yaml:"keywords"`
	Skills   []string `yaml:"skills"`
}

// Taxonomy 按照 Buckets 的顺序匹配，第一个命中的生效，都没命中就用 Default
type Taxonomy struct {
	Buckets []Bucket `yaml:"buckets"`
	Default []string `yaml:"default"`
}

func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Buckets: []Bucket{
			{
				Keywords: []string{"developer", "engineer"},
				Skills:   []string{"JavaScript", "React", "Node.js", "SQL", "Git", "Problem Solving", "Communication"},
			},
			{
				Keywords: []string{"designer"},
				Skills:   []string{"Figma", "Adobe XD", "UI/UX", "Typography", "Color Theory", "Wireframing", "Prototyping"},
			},
			{
				Keywords: []string{"manager"},
				Skills: []string{"Leadership", "Project Management", "Communication", "Strategic Planning",
					"Team Building", "Conflict Resolution", "Budgeting"},
			},
		},
		Default: []string{"Communication", "Problem Solving", "Time Management", "Teamwork",
			"Adaptability", "Critical Thinking", "Organization"},
	}
}

func (t Taxonomy) IsZero() bool {
	return len(t.Buckets) == 0 && len(t.Default) == 0
}

// RequiredSkills 返回的是副本，调用方可以随便修改
func (t Taxonomy) RequiredSkills(jobTitle string) []string {
	title := strings.ToLower(jobTitle)
	for _, b := range t.Buckets {
		for _, k := range b.Keywords {
			if strings.Contains(title, strings.ToLower(k)) {
				return append([]string(nil), b.Skills...)
			}
		}
	}
	return append([]string(nil), t.Default...)
}

// Config 对应配置文件里面的 skillgap 部分
type Config struct {
	// 学习资源的地址前缀，默认是 https://example.com
	ResourceBaseURL string   `yaml:"resourceBaseURL"`
	Taxonomy        Taxonomy `yaml:"taxonomy"`
}
