package cloudinary

import (
	"context"
	"fmt"
	"io"

	sdk "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Fixed constraints applied to every article image upload.
const (
	uploadFolder   = "article_images"
	transformation = "w_1200,h_630,c_limit"
)

var allowedFormats = api.CldAPIArray{"jpg", "png", "jpeg", "gif"}

// Config holds the credentials for the Cloudinary API.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Client wraps the Cloudinary upload API.
type Client struct {
	cld *sdk.Cloudinary
}

// NewClient creates a new Cloudinary client from the given credentials.
func NewClient(cfg Config) (*Client, error) {
	cld, err := sdk.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &Client{
		cld: cld,
	}, nil
}

// UploadArticleImage forwards the image bytes to Cloudinary under the
// article namespace, bounded to 1200x630 with an aspect-preserving limit
// fit. Only jpg, png, jpeg and gif are accepted by the host.
func (c *Client) UploadArticleImage(ctx context.Context, image io.Reader) (*uploader.UploadResult, error) {
	result, err := c.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		PublicID:       uuid.New().String(),
		Folder:         uploadFolder,
		AllowedFormats: allowedFormats,
		Transformation: transformation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	// The SDK reports API-level rejections (e.g. disallowed format) inside
	// the result rather than as an error.
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}
	return result, nil
}
