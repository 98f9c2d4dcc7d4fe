package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSessionType(t *testing.T) {
	testCases := []struct {
		input string
		want  SessionType
	}{
		{input: "resume_review", want: SessionTypeResumeReview},
		{input: "interview_prep", want: SessionTypeInterviewPrep},
		{input: "skill_gap_analysis", want: SessionTypeSkillGapAnalysis},
		{input: "career_path_planning", want: SessionTypeCareerPathPlanning},
		{input: "career_advice", want: SessionTypeCareerAdvice},
		{input: "", want: SessionTypeCareerAdvice},
		{input: "unknown", want: SessionTypeCareerAdvice},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSessionType(tc.input))
			assert.NotEmpty(t, tc.want.Greeting())
		})
	}
}

func TestSession_RecentMessages(t *testing.T) {
	sess := Session{Messages: []Message{
		{Content: "1"}, {Content: "2"}, {Content: "3"},
	}}
	assert.Equal(t, []Message{{Content: "2"}, {Content: "3"}}, sess.RecentMessages(2))
	assert.Equal(t, sess.Messages, sess.RecentMessages(10))
	assert.Equal(t, []Message{}, sess.RecentMessages(0))
}

func TestFeedback_Valid(t *testing.T) {
	assert.False(t, Feedback{Rating: 0}.Valid())
	assert.True(t, Feedback{Rating: 1}.Valid())
	assert.True(t, Feedback{Rating: 5}.Valid())
	assert.False(t, Feedback{Rating: 6}.Valid())
}
