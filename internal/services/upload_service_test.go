package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"photofolio_backend/internal/imageprocessor"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(store *fakeStorage) UploadService {
	return NewUploadService(store, imageprocessor.NewProcessor(85), UploadConfig{
		MaxSize:         10 << 20,
		AllowedTypes:    []string{"image/jpeg", "image/png", "video/mp4"},
		MediaBucket:     "media",
		PortfolioBucket: "portfolio-images",
	})
}

func multipartFile(t *testing.T, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil))
	return buf.Bytes()
}

func TestUploadFileRejectsNonAdminWithoutStoreCalls(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadFixture(store)
	file := multipartFile(t, "photo.jpg", "image/jpeg", jpegBytes(t, 4, 4))

	_, err := svc.UploadFile(context.Background(), viewerActor(), file, &dto.UploadRequest{Bucket: "media"})
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

	_, err = svc.UploadFile(context.Background(), nil, file, &dto.UploadRequest{Bucket: "media"})
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

	assert.Empty(t, store.ops)
}

func TestUploadFileEnforcesSizeLimit(t *testing.T) {
	store := newFakeStorage()
	svc := NewUploadService(store, imageprocessor.NewProcessor(85), UploadConfig{
		MaxSize:      16,
		AllowedTypes: []string{"image/jpeg"},
		MediaBucket:  "media",
	})
	file := multipartFile(t, "photo.jpg", "image/jpeg", jpegBytes(t, 4, 4))

	_, err := svc.UploadFile(context.Background(), adminActor(), file, &dto.UploadRequest{Bucket: "media"})
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Empty(t, store.ops)
}

func TestUploadFileRejectsDisallowedMIME(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadFixture(store)
	file := multipartFile(t, "payload.exe", "application/octet-stream", []byte("nope"))

	_, err := svc.UploadFile(context.Background(), adminActor(), file, &dto.UploadRequest{Bucket: "media"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	assert.Empty(t, store.ops)
}

func TestUploadFileStoresUnderActorPrefix(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadFixture(store)
	file := multipartFile(t, "photo.jpg", "image/jpeg", jpegBytes(t, 4, 4))

	resp, err := svc.UploadFile(context.Background(), adminActor(), file, &dto.UploadRequest{Bucket: "media"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Path, adminActor().ID+"/"))
	assert.True(t, strings.HasSuffix(resp.Path, ".jpg"))
	assert.Equal(t, "https://cdn.test/media/"+resp.Path, resp.URL)
	assert.Equal(t, "photo.jpg", resp.FileName)
	assert.Equal(t, "image", resp.MediaType)
	assert.Empty(t, resp.ThumbnailURL)

	var saves []storageOp
	for _, op := range store.ops {
		if op.op == "save" {
			saves = append(saves, op)
		}
	}
	require.Len(t, saves, 1)
	assert.Equal(t, "media", saves[0].bucket)
}

func TestUploadFileSelectsPortfolioBucket(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadFixture(store)
	file := multipartFile(t, "photo.jpg", "image/jpeg", jpegBytes(t, 4, 4))

	resp, err := svc.UploadFile(context.Background(), adminActor(), file, &dto.UploadRequest{Bucket: "portfolio"})
	require.NoError(t, err)
	assert.Contains(t, resp.URL, "/portfolio-images/")
}

func TestUploadFileGeneratesThumbnail(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadFixture(store)
	file := multipartFile(t, "photo.jpg", "image/jpeg", jpegBytes(t, 600, 400))

	resp, err := svc.UploadFile(context.Background(), adminActor(), file, &dto.UploadRequest{Bucket: "media", Thumbnail: true})
	require.NoError(t, err)

	require.NotEmpty(t, resp.ThumbnailURL)
	assert.Contains(t, resp.ThumbnailURL, "_thumb.jpg")

	var savedPaths []string
	for _, op := range store.ops {
		if op.op == "save" {
			savedPaths = append(savedPaths, op.path)
		}
	}
	require.Len(t, savedPaths, 2)
	assert.Equal(t, strings.TrimSuffix(savedPaths[0], ".jpg")+"_thumb.jpg", savedPaths[1])
}

func TestUploadFileSkipsThumbnailForVideo(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadFixture(store)
	file := multipartFile(t, "clip.mp4", "video/mp4", []byte("not-really-a-video"))

	resp, err := svc.UploadFile(context.Background(), adminActor(), file, &dto.UploadRequest{Bucket: "media", Thumbnail: true})
	require.NoError(t, err)
	assert.Equal(t, "video", resp.MediaType)
	assert.Empty(t, resp.ThumbnailURL)
}

func TestUploadFileOverwriteSkipsExistenceCheck(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadFixture(store)
	file := multipartFile(t, "photo.jpg", "image/jpeg", jpegBytes(t, 4, 4))

	_, err := svc.UploadFile(context.Background(), adminActor(), file, &dto.UploadRequest{Bucket: "media", Overwrite: true})
	require.NoError(t, err)
	for _, op := range store.ops {
		assert.NotEqual(t, "exists", op.op)
	}
}

func TestDeleteFileRequiresAdmin(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadFixture(store)

	err := svc.DeleteFile(context.Background(), viewerActor(), "media", "u/1.jpg")
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
	assert.Empty(t, store.ops)

	require.NoError(t, svc.DeleteFile(context.Background(), adminActor(), "media", "u/1.jpg"))
	require.Len(t, store.ops, 1)
	assert.Equal(t, storageOp{"delete", "media", "u/1.jpg"}, store.ops[0])
}
