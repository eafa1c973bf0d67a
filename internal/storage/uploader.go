package storage

import (
	"bytes"
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/joblane/joblane-backend/internal/common"
)

// Uploader turns an in-memory file into a publicly reachable URL. Profile
// photos, resumes and company logos all go through this.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{client: client}, nil
}

// DisabledUploader rejects every upload. Wired in when no CLOUDINARY_URL is
// configured so the rest of the API keeps working without file storage.
type DisabledUploader struct{}

func (DisabledUploader) Upload(context.Context, []byte, string) (string, error) {
	return "", common.NewError(common.CodeInternal, "file storage is not configured", nil)
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		FilenameOverride: filename,
		ResourceType:     "auto",
	})
	if err != nil {
		return "", common.NewError(common.CodeInternal, "file upload failed", err)
	}
	return resp.SecureURL, nil
}
