package cmd

import (
	"bytes"
	"testing"

	v1 "github.com/byxorna/coursebook/pkg/types/v1"
	"github.com/stretchr/testify/assert"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, []v1.Course{
		{Code: "CS101", Name: "Intro", Progression: v1.ProgressionA, Syllabus: "http://x"},
		{Code: "MA201", Name: "Linear Algebra", Progression: v1.ProgressionC, Syllabus: "https://example.edu/ma201"},
	})

	out := buf.String()
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "PROGRESSION")
	assert.Contains(t, out, "Linear Algebra")
	assert.Contains(t, out, "https://example.edu/ma201")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("CS101")), bytes.Index(buf.Bytes(), []byte("MA201")))
}
