package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkills(t *testing.T) {
	testCases := []struct {
		name   string
		skills []string
		want   []string
	}{
		{
			name:   "nil",
			skills: nil,
			want:   []string{},
		},
		{
			name:   "去掉空白",
			skills: []string{" Go ", "", "   ", "SQL"},
			want:   []string{"Go", "SQL"},
		},
		{
			name:   "忽略大小写去重，保留第一次的写法",
			skills: []string{"React", "react", "REACT", "Git"},
			want:   []string{"React", "Git"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSkills(tc.skills))
		})
	}
}

func TestCommunicationStyle_Valid(t *testing.T) {
	assert.True(t, CommunicationStyleFormal.Valid())
	assert.True(t, CommunicationStyleSupportive.Valid())
	assert.False(t, CommunicationStyle("").Valid())
	assert.False(t, CommunicationStyle("rude").Valid())
}
