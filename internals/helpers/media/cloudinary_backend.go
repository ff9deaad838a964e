package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"requirements_backend/internals/configs"
)

// CloudinaryBackend pushes files to Cloudinary under a fixed folder.
// Images can optionally be re-encoded to a bounded WebP before upload
// (MEDIA_WEBP=true); a re-encode failure falls back to the original bytes so
// the upload contract is unchanged.
type CloudinaryBackend struct {
	cld        *cloudinary.Cloudinary
	folder     string
	encodeWebP bool
	maxDim     int
	quality    float32
}

func NewCloudinaryBackendFromEnv() (*CloudinaryBackend, error) {
	url := configs.GetEnv("CLOUDINARY_URL")
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is empty")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &CloudinaryBackend{
		cld:        cld,
		folder:     configs.GetEnv("MEDIA_FOLDER", "requirements"),
		encodeWebP: configs.GetEnv("MEDIA_WEBP", "false") == "true",
		maxDim:     envInt("MEDIA_WEBP_MAX_DIM", 1600),
		quality:    float32(envInt("MEDIA_WEBP_QUALITY", 80)),
	}, nil
}

func (b *CloudinaryBackend) Upload(ctx context.Context, r io.Reader, resourceType, filename string) (string, error) {
	var payload io.Reader = r
	if resourceType == "image" && b.encodeWebP {
		raw, err := io.ReadAll(r)
		if err != nil {
			// the reader is partially consumed now; fail the file instead
			// of uploading truncated bytes
			return "", fmt.Errorf("read %s: %w", filename, err)
		}
		payload = b.reencode(raw)
	}

	res, err := b.cld.Upload.Upload(ctx, payload, uploader.UploadParams{
		Folder:       b.folder,
		ResourceType: resourceType,
		PublicID:     uuid.New().String(),
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("cloudinary: empty secure_url for %s", filename)
	}
	return res.SecureURL, nil
}

// reencode downsizes and converts an image to WebP. A decode or encode
// failure returns the original bytes untouched.
func (b *CloudinaryBackend) reencode(raw []byte) io.Reader {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return bytes.NewReader(raw)
	}
	if b.maxDim > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > b.maxDim || bounds.Dy() > b.maxDim {
			img = imaging.Fit(img, b.maxDim, b.maxDim, imaging.Lanczos)
		}
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: b.quality}); err != nil {
		return bytes.NewReader(raw)
	}
	return buf
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(configs.GetEnv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
