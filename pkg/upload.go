package pkg

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const MaxResumeSize = 5 << 20 // 5 MB

var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// SaveResume validates and stores an uploaded resume under
// <uploadDir>/resumes with a generated name, returning the stored path.
func SaveResume(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	if file.Size > MaxResumeSize {
		return "", fmt.Errorf("resume exceeds the %d MB limit", MaxResumeSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !resumeExtensions[ext] {
		return "", fmt.Errorf("invalid file type %q, allowed: .pdf, .doc, .docx", ext)
	}

	dir := filepath.Join(uploadDir, "resumes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dest := filepath.Join(dir, fmt.Sprintf("resume-%s%s", uuid.NewString(), ext))
	if err := c.SaveUploadedFile(file, dest); err != nil {
		return "", fmt.Errorf("failed to store resume: %w", err)
	}
	return dest, nil
}

// ValidResumeExt reports whether the filename carries an accepted resume
// extension.
func ValidResumeExt(filename string) bool {
	return resumeExtensions[strings.ToLower(filepath.Ext(filename))]
}
