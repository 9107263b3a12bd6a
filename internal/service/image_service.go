package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"friendly/internal/config"
	"friendly/internal/models"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	DefaultImageMaxUploadSizeMB = 10
	ThumbnailMaxSize            = 640
	ThumbnailWebPQuality        = 70
)

// SaveImageInput carries one uploaded file.
type SaveImageInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// SavedImage describes where an accepted upload landed on disk.
type SavedImage struct {
	// WebPath is the URL path browsers use, e.g. /uploads/<uuid>_<name>.
	WebPath string
	// DiskPaths are the files written for this upload, for cleanup when a
	// later step fails.
	DiskPaths []string
}

// ImageService stores uploaded post images under the configured upload
// directory and generates a WebP thumbnail alongside each original.
type ImageService struct {
	uploadDir          string
	maxUploadSizeBytes int64
}

func NewImageService(cfg *config.Config) *ImageService {
	uploadDir := "wwwroot/uploads"
	if cfg != nil && cfg.UploadDir != "" {
		uploadDir = cfg.UploadDir
	}
	return &ImageService{
		uploadDir:          uploadDir,
		maxUploadSizeBytes: int64(DefaultImageMaxUploadSizeMB) * 1024 * 1024,
	}
}

// Save validates and writes the upload, returning its public path.
func (s *ImageService) Save(in SaveImageInput) (*SavedImage, error) {
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadSizeBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detectedType := http.DetectContentType(in.Content)
	if !isAllowedImageMIME(detectedType) {
		return nil, models.NewValidationError("Invalid image type")
	}

	decoded, format, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return nil, models.NewValidationError("Invalid image file")
	}
	if !isSupportedDecodedFormat(format) {
		return nil, models.NewValidationError("Unsupported image format")
	}

	filename := fmt.Sprintf("%s_%s", uuid.NewString(), sanitizeFilename(in.Filename))
	originalAbs := filepath.Join(s.uploadDir, filename)
	written := []string{originalAbs}

	if err := writeBytesToFile(originalAbs, in.Content); err != nil {
		return nil, models.NewInternalError(err)
	}

	// Thumbnail failures lose only the preview, never the upload.
	thumb := resizeToFit(decoded, ThumbnailMaxSize, ThumbnailMaxSize)
	if thumbBytes, encErr := encodeWebP(thumb, ThumbnailWebPQuality); encErr == nil {
		thumbAbs := filepath.Join(s.uploadDir, thumbnailName(filename))
		if writeErr := writeBytesToFile(thumbAbs, thumbBytes); writeErr == nil {
			written = append(written, thumbAbs)
		}
	}

	return &SavedImage{
		WebPath:   "/uploads/" + filename,
		DiskPaths: written,
	}, nil
}

// Remove deletes the files of a stored image, best-effort.
func (s *ImageService) Remove(img *SavedImage) {
	if img == nil {
		return
	}
	for _, p := range img.DiskPaths {
		_ = os.Remove(p)
	}
}

// RemoveByWebPath deletes the files behind a stored /uploads/ path.
func (s *ImageService) RemoveByWebPath(webPath string) {
	if !strings.HasPrefix(webPath, "/uploads/") {
		return
	}
	name := strings.TrimPrefix(webPath, "/uploads/")
	if name == "" {
		return
	}
	// Reject anything that could escape the upload directory.
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return
	}
	_ = os.Remove(filepath.Join(s.uploadDir, name))
	_ = os.Remove(filepath.Join(s.uploadDir, thumbnailName(name)))
}

// UploadDir returns the directory uploads are written to.
func (s *ImageService) UploadDir() string {
	return s.uploadDir
}

func thumbnailName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_thumb.webp"
}

func sanitizeFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "upload"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isAllowedImageMIME(contentType string) bool {
	switch normalizeContentType(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func isSupportedDecodedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "jpeg", "jpg", "png", "gif", "webp":
		return true
	default:
		return false
	}
}

func writeBytesToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
