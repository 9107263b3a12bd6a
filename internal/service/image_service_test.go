package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"friendly/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageService_Save(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := NewImageService(&config.Config{UploadDir: dir})

	saved, err := svc.Save(SaveImageInput{
		Filename:    "my pic.png",
		ContentType: "image/png",
		Content:     pngBytes(t),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(saved.WebPath, "/uploads/"))
	assert.True(t, strings.HasSuffix(saved.WebPath, "_my-pic.png"))

	for _, p := range saved.DiskPaths {
		_, statErr := os.Stat(p)
		assert.NoError(t, statErr, "expected %s on disk", p)
	}

	// A second upload of the same file gets a distinct name.
	saved2, err := svc.Save(SaveImageInput{
		Filename:    "my pic.png",
		ContentType: "image/png",
		Content:     pngBytes(t),
	})
	require.NoError(t, err)
	assert.NotEqual(t, saved.WebPath, saved2.WebPath)
}

func TestImageService_Save_RejectsNonImages(t *testing.T) {
	t.Parallel()

	svc := NewImageService(&config.Config{UploadDir: t.TempDir()})

	tests := []struct {
		name    string
		content []byte
	}{
		{"Empty", nil},
		{"Plain Text", []byte("hello world")},
		{"HTML", []byte("<html><body>x</body></html>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(SaveImageInput{Filename: "x.png", Content: tt.content})
			assertValidationError(t, err)
		})
	}
}

func TestImageService_Remove(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := NewImageService(&config.Config{UploadDir: dir})

	saved, err := svc.Save(SaveImageInput{
		Filename:    "pic.png",
		ContentType: "image/png",
		Content:     pngBytes(t),
	})
	require.NoError(t, err)

	svc.Remove(saved)
	for _, p := range saved.DiskPaths {
		_, statErr := os.Stat(p)
		assert.True(t, os.IsNotExist(statErr))
	}
}

func TestImageService_RemoveByWebPath_RejectsTraversal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := NewImageService(&config.Config{UploadDir: dir})

	outside := filepath.Join(dir, "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o600))

	svc.RemoveByWebPath("/uploads/../victim.txt")
	svc.RemoveByWebPath("/etc/passwd")

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the upload dir must survive")
}
