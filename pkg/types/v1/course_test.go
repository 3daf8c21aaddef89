package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseValidate(t *testing.T) {
	testcases := map[string]struct {
		course  Course
		wantErr string
	}{
		"valid": {
			course: Course{Code: "CS101", Name: "Intro", Progression: ProgressionA, Syllabus: "http://x"},
		},
		"missing code": {
			course:  Course{Name: "Intro", Progression: ProgressionA, Syllabus: "http://x"},
			wantErr: "code is required",
		},
		"bad progression": {
			course:  Course{Code: "CS101", Name: "Intro", Progression: "D", Syllabus: "http://x"},
			wantErr: "progression must be one of A, B, C",
		},
		"bad syllabus": {
			course:  Course{Code: "CS101", Name: "Intro", Progression: ProgressionB, Syllabus: "not a url"},
			wantErr: "syllabus must be a valid URL",
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			err := tc.course.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestProgressionCycle(t *testing.T) {
	assert.Equal(t, ProgressionB, ProgressionA.Next())
	assert.Equal(t, ProgressionA, ProgressionC.Next())
	assert.Equal(t, ProgressionA, Progression("").Next())
	assert.Equal(t, ProgressionC, ProgressionA.Prev())
	assert.Equal(t, ProgressionA, ProgressionB.Prev())
}

func TestParseProgression(t *testing.T) {
	p, err := ParseProgression(" b ")
	require.NoError(t, err)
	assert.Equal(t, ProgressionB, p)

	_, err = ParseProgression("Z")
	assert.ErrorIs(t, err, ErrUnknownProgression)
}

func TestCourseCheck(t *testing.T) {
	legacy := Course{Code: "CS101", Progression: ProgressionA, Syllabus: "kursplan.pdf"}
	assert.NoError(t, legacy.Check())
	assert.Error(t, legacy.Validate())

	assert.ErrorIs(t, (&Course{Progression: ProgressionA}).Check(), ErrNoCode)
	assert.ErrorIs(t, (&Course{Code: "CS101", Progression: "Z"}).Check(), ErrUnknownProgression)
}

func TestCourseValidateChanged(t *testing.T) {
	prev := Course{Code: "CS101", Progression: ProgressionA, Syllabus: "kursplan.pdf"}

	edited := prev
	edited.Progression = ProgressionB
	assert.NoError(t, edited.ValidateChanged(prev))

	edited.Syllabus = "still not a url"
	assert.EqualError(t, edited.ValidateChanged(prev), "syllabus must be a valid URL")

	edited = prev
	edited.Code = ""
	assert.EqualError(t, edited.ValidateChanged(prev), "code is required")
}
