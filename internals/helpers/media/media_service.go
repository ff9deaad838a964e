package media

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"strings"
)

// Result carries the durable URLs returned by the hosting service,
// partitioned by classification and ordered like the input.
type Result struct {
	Images []string
	Videos []string
}

// Service is the uploader facade the controllers depend on. A file whose
// upload fails is logged and skipped; the batch itself never fails, so
// callers cannot distinguish "no media supplied" from "all uploads failed".
type Service interface {
	UploadAll(ctx context.Context, files []*multipart.FileHeader) Result
}

// Backend performs one upload and returns the durable secure URL.
type Backend interface {
	Upload(ctx context.Context, r io.Reader, resourceType, filename string) (string, error)
}

// BatchUploader classifies each file by its declared MIME type (image if the
// type starts with "image", video otherwise) and pushes it to the backend
// one at a time.
type BatchUploader struct {
	Backend Backend
}

func NewBatchUploader(b Backend) *BatchUploader {
	return &BatchUploader{Backend: b}
}

func (u *BatchUploader) UploadAll(ctx context.Context, files []*multipart.FileHeader) Result {
	var res Result
	for _, fh := range files {
		if fh == nil || fh.Filename == "" {
			continue
		}
		resourceType := classify(fh)
		url, err := u.uploadOne(ctx, fh, resourceType)
		if err != nil {
			log.Printf("[WARN] upload failed for %s: %v", fh.Filename, err)
			continue
		}
		if resourceType == "image" {
			res.Images = append(res.Images, url)
		} else {
			res.Videos = append(res.Videos, url)
		}
	}
	return res
}

func (u *BatchUploader) uploadOne(ctx context.Context, fh *multipart.FileHeader, resourceType string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return u.Backend.Upload(ctx, f, resourceType, fh.Filename)
}

func classify(fh *multipart.FileHeader) string {
	if strings.HasPrefix(fh.Header.Get("Content-Type"), "image") {
		return "image"
	}
	return "video"
}

// CollectMediaFiles gathers the uploaded files of the media form field.
func CollectMediaFiles(form *multipart.Form, fieldNames ...string) []*multipart.FileHeader {
	if form == nil || form.File == nil {
		return nil
	}
	names := fieldNames
	if len(names) == 0 {
		names = []string{"media[]", "media"}
	}
	var out []*multipart.FileHeader
	for _, name := range names {
		for _, fh := range form.File[name] {
			if fh != nil && fh.Filename != "" {
				out = append(out, fh)
			}
		}
	}
	return out
}

// --------------------------------------------------
// Disabled service (no credentials configured)
// --------------------------------------------------

type DisabledService struct{}

func (DisabledService) UploadAll(ctx context.Context, files []*multipart.FileHeader) Result {
	if len(files) > 0 {
		log.Printf("[WARN] media service disabled, dropping %d file(s)", len(files))
	}
	return Result{}
}

// --------------------------------------------------
// Mock for unit tests
// --------------------------------------------------

type MockService struct {
	UploadAllFn func(ctx context.Context, files []*multipart.FileHeader) Result
}

func (m *MockService) UploadAll(ctx context.Context, files []*multipart.FileHeader) Result {
	if m.UploadAllFn == nil {
		return Result{}
	}
	return m.UploadAllFn(ctx, files)
}
