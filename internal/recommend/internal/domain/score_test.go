package domain

import (
	"testing"

	"github.com/ecodeclub/jobportal/internal/job"
	"github.com/stretchr/testify/assert"
)

func TestDistinctSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, DistinctSkills([]string{" Go ", "", "go", "SQL", "  "}))
	assert.Equal(t, []string{}, DistinctSkills(nil))
}

func TestScorer_Rank(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, Title: "Frontend Engineer", Description: "build pages", Requirements: []string{"React"}},
		{ID: 2, Title: "Backend Engineer", Description: "Go services", Requirements: []string{"MySQL", "Redis"}},
		{ID: 3, Title: "Data Analyst", Description: "reports", Requirements: []string{"SQL"}},
		{ID: 4, Title: "Fullstack Engineer", Description: "go and react", Requirements: []string{"sql"}},
	}
	testCases := []struct {
		name      string
		skills    []string
		jobs      []job.Job
		wantIds   []int64
		wantScore []int
	}{
		{
			name:      "没有技能",
			skills:    []string{},
			jobs:      jobs,
			wantIds:   []int64{},
			wantScore: []int{},
		},
		{
			name:      "只有空白技能",
			skills:    []string{" ", ""},
			jobs:      jobs,
			wantIds:   []int64{},
			wantScore: []int{},
		},
		{
			name:   "按分数排序",
			skills: []string{"go", "React", "SQL"},
			jobs:   jobs,
			// 4 命中三个；2 命中 go 和 MySQL 里的 SQL；1 和 3 各命中一个
			wantIds:   []int64{4, 2, 1, 3},
			wantScore: []int{100, 67, 33, 33},
		},
		{
			name:      "重复技能只算一次",
			skills:    []string{"react", "REACT"},
			jobs:      jobs,
			wantIds:   []int64{1, 4},
			wantScore: []int{100, 100},
		},
		{
			name:   "一个技能都没命中的职位不返回",
			skills: []string{`","`, "Go"},
			jobs: []job.Job{
				{ID: 7, Title: "Cache Engineer", Requirements: []string{"Go", "Redis"}},
				{ID: 8, Title: "Designer", Requirements: []string{"Figma", "Sketch"}},
			},
			wantIds:   []int64{7},
			wantScore: []int{50},
		},
		{
			name:      "正则元字符按字面量匹配",
			skills:    []string{"C++", "Node.js"},
			jobs:      []job.Job{{ID: 5, Title: "CCC", Description: "Nodexjs"}, {ID: 6, Requirements: []string{"c++"}}},
			wantIds:   []int64{6},
			wantScore: []int{50},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := NewScorer(tc.skills).Rank(tc.jobs)
			ids := make([]int64, 0, len(res))
			scores := make([]int, 0, len(res))
			for _, r := range res {
				ids = append(ids, r.Job.ID)
				scores = append(scores, r.MatchScore)
				assert.GreaterOrEqual(t, r.MatchScore, 0)
				assert.LessOrEqual(t, r.MatchScore, 100)
			}
			assert.Equal(t, tc.wantIds, ids)
			assert.Equal(t, tc.wantScore, scores)
		})
	}
}
