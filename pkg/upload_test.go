package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidResumeExt(t *testing.T) {
	assert.True(t, ValidResumeExt("cv.pdf"))
	assert.True(t, ValidResumeExt("cv.DOC"))
	assert.True(t, ValidResumeExt("my resume.docx"))

	assert.False(t, ValidResumeExt("cv.exe"))
	assert.False(t, ValidResumeExt("cv"))
	assert.False(t, ValidResumeExt("cv.pdf.sh"))
}
