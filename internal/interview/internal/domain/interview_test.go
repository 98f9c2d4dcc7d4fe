package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterviewType(t *testing.T) {
	assert.Equal(t, InterviewTypeBehavioral, ParseInterviewType("behavioral"))
	assert.Equal(t, InterviewTypeTechnical, ParseInterviewType("technical"))
	assert.Equal(t, InterviewTypeJobSpecific, ParseInterviewType("job_specific"))
	assert.Equal(t, InterviewTypeGeneral, ParseInterviewType("general"))
	assert.Equal(t, InterviewTypeGeneral, ParseInterviewType(""))
	assert.Equal(t, InterviewTypeGeneral, ParseInterviewType("panel"))
}

func TestDefaultQuestions(t *testing.T) {
	qs := DefaultQuestions()
	require.Len(t, qs, 5)
	qs[0].Answer = "changed"
	assert.Equal(t, "", DefaultQuestions()[0].Answer)
}

func TestInterview_Answer(t *testing.T) {
	testCases := []struct {
		name          string
		before        func() Interview
		index         int
		score         int
		wantErr       error
		wantCompleted bool
		wantOverall   int
	}{
		{
			name: "回答第一题",
			before: func() Interview {
				return Interview{Questions: DefaultQuestions()}
			},
			index: 0,
			score: 8,
		},
		{
			name: "下标越界",
			before: func() Interview {
				return Interview{Questions: DefaultQuestions()}
			},
			index:   5,
			wantErr: ErrQuestionIndexOutOfRange,
		},
		{
			name: "负数下标",
			before: func() Interview {
				return Interview{Questions: DefaultQuestions()}
			},
			index:   -1,
			wantErr: ErrQuestionIndexOutOfRange,
		},
		{
			name: "回答最后一题，面试结束",
			before: func() Interview {
				qs := DefaultQuestions()
				// 6 + 7 + 8 + 9 = 30
				for i := 0; i < 4; i++ {
					qs[i].Answer = "answer"
					qs[i].Score = 6 + i
				}
				return Interview{Questions: qs}
			},
			index:         4,
			score:         10,
			wantCompleted: true,
			// 40 / 5
			wantOverall: 8,
		},
		{
			name: "平均分四舍五入",
			before: func() Interview {
				qs := DefaultQuestions()
				for i := 0; i < 4; i++ {
					qs[i].Answer = "answer"
					qs[i].Score = 10
				}
				return Interview{Questions: qs}
			},
			index:         4,
			score:         7,
			wantCompleted: true,
			// 47 / 5 = 9.4
			wantOverall: 9,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i := tc.before()
			err := i.Answer(tc.index, "my answer", "feedback", tc.score)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, "my answer", i.Questions[tc.index].Answer)
			assert.Equal(t, tc.score, i.Questions[tc.index].Score)
			assert.Equal(t, tc.wantCompleted, i.IsCompleted)
			assert.Equal(t, tc.wantOverall, i.OverallScore)
			if tc.wantCompleted {
				assert.Equal(t, OverallFeedback, i.OverallFeedback)
			}
		})
	}
}
