package validator

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ifab-lab/workshop-backend/internal/config"
	"github.com/ifab-lab/workshop-backend/internal/entity"
)

var AllowedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".ogg":  true,
	".webm": true,
}

// Validator validates incoming requests and file uploads
type Validator struct {
	cfg config.FileUploadConfig
}

func NewValidator(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAudioUpload validates a single voice recording upload
func (v *Validator) ValidateAudioUpload(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("%w: audio", entity.ErrMissingField)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := AllowedAudioExtensions[ext]; !ok {
		return fmt.Errorf("%w: %s (allowed: wav, mp3, m4a, ogg, webm)", entity.ErrInvalidExtension, ext)
	}

	if fh.Size > v.cfg.MaxAudioFileSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, fh.Filename, fh.Size, v.cfg.MaxAudioFileSize)
	}

	return nil
}
