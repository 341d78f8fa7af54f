package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader reads CLOUDINARY_URL from the environment via the
// SDK's URL constructor.
func NewCloudinaryUploader(cloudinaryURL, folder string) (Uploader, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &cloudinaryUploader{client: client, folder: folder}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, filename string, content []byte) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, bytes.NewReader(content), uploader.UploadParams{
		PublicID:     filename,
		Folder:       u.folder,
		ResourceType: "raw",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}
