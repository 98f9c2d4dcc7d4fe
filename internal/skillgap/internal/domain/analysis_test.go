package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomy_RequiredSkills(t *testing.T) {
	taxonomy := DefaultTaxonomy()
	testCases := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "工程师",
			title: "Senior Backend Engineer",
			want:  []string{"JavaScript", "React", "Node.js", "SQL", "Git", "Problem Solving", "Communication"},
		},
		{
			name:  "忽略大小写",
			title: "FRONTEND DEVELOPER",
			want:  []string{"JavaScript", "React", "Node.js", "SQL", "Git", "Problem Solving", "Communication"},
		},
		{
			name:  "设计师",
			title: "Product Designer",
			want:  []string{"Figma", "Adobe XD", "UI/UX", "Typography", "Color Theory", "Wireframing", "Prototyping"},
		},
		{
			name:  "经理",
			title: "Marketing Manager",
			want: []string{"Leadership", "Project Management", "Communication", "Strategic Planning",
				"Team Building", "Conflict Resolution", "Budgeting"},
		},
		{
			name:  "优先级，developer 在 manager 之前",
			title: "Developer Manager",
			want:  []string{"JavaScript", "React", "Node.js", "SQL", "Git", "Problem Solving", "Communication"},
		},
		{
			name:  "都没命中",
			title: "Accountant",
			want: []string{"Communication", "Problem Solving", "Time Management", "Teamwork",
				"Adaptability", "Critical Thinking", "Organization"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, taxonomy.RequiredSkills(tc.title))
		})
	}
}

func TestTaxonomy_RequiredSkillsCopy(t *testing.T) {
	taxonomy := DefaultTaxonomy()
	res := taxonomy.RequiredSkills("engineer")
	res[0] = "Go"
	assert.Equal(t, "JavaScript", taxonomy.RequiredSkills("engineer")[0])
}

func TestDiff(t *testing.T) {
	testCases := []struct {
		name         string
		required     []string
		userSkills   []string
		wantMatching []string
		wantMissing  []string
	}{
		{
			name:         "忽略大小写",
			required:     []string{"JavaScript", "React", "Node.js", "SQL", "Git", "Problem Solving", "Communication"},
			userSkills:   []string{"javascript", "REACT", "Git"},
			wantMatching: []string{"JavaScript", "React", "Git"},
			wantMissing:  []string{"Node.js", "SQL", "Problem Solving", "Communication"},
		},
		{
			name:         "没有技能",
			required:     []string{"Figma", "Typography"},
			userSkills:   nil,
			wantMatching: []string{},
			wantMissing:  []string{"Figma", "Typography"},
		},
		{
			name:         "全部掌握，多余的技能不影响",
			required:     []string{"Figma"},
			userSkills:   []string{"figma", "Go"},
			wantMatching: []string{"Figma"},
			wantMissing:  []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			matching, missing := Diff(tc.required, tc.userSkills)
			assert.Equal(t, tc.wantMatching, matching)
			assert.Equal(t, tc.wantMissing, missing)
			// 每个必备技能只会出现一次
			assert.Equal(t, len(tc.required), len(matching)+len(missing))
			assert.ElementsMatch(t, tc.required, append(append([]string{}, matching...), missing...))
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "problem-solving", Slug("Problem Solving"))
	assert.Equal(t, "node.js", Slug("Node.js"))
	assert.Equal(t, "ui/ux", Slug("UI/UX"))
	assert.Equal(t, "conflict-resolution", Slug("Conflict   Resolution"))
}

func TestAnalysis_MatchingSkills(t *testing.T) {
	a := Analysis{
		RequiredSkills: []string{"Figma", "Adobe XD", "UI/UX"},
		MissingSkills: []MissingSkill{
			{Skill: "Adobe XD", Importance: ImportanceCritical},
		},
	}
	assert.Equal(t, []string{"Figma", "UI/UX"}, a.MatchingSkills())
}
