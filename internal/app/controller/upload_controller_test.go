package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ikkim/ft-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	folder string
	err    error
}

func (f *fakePresigner) PresignUpload(_ context.Context, filename, contentType, folder string) (*storage.PresignedUpload, error) {
	f.folder = folder
	if f.err != nil {
		return nil, f.err
	}
	return &storage.PresignedUpload{
		UploadURL: "https://bucket.example/" + folder + "/k.png?sig",
		FileURL:   "https://cdn.example/" + folder + "/k.png",
		Key:       folder + "/k.png",
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func TestUploadController_GeneratePresignedURL(t *testing.T) {
	router, _ := setupControllerTest(t)
	fake := &fakePresigner{}
	router.POST("/upload", NewUploadController(fake).GeneratePresignedURL)

	w := doJSON(t, router, http.MethodPost, "/upload", map[string]string{
		"filename":     "a.png",
		"content_type": "image/png",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, storage.FolderItems, fake.folder)
	assert.Equal(t, "https://cdn.example/items/k.png", decode(t, w)["file_url"])

	w = doJSON(t, router, http.MethodPost, "/upload", map[string]string{
		"filename":     "a.png",
		"content_type": "image/png",
		"folder":       "boards",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, storage.FolderBoards, fake.folder)
}

func TestUploadController_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"bad content type", storage.ErrInvalidContentType, http.StatusBadRequest, "UPLOAD_INVALID_FILE_TYPE"},
		{"bad folder", storage.ErrInvalidFolder, http.StatusBadRequest, "UPLOAD_INVALID_FILE_TYPE"},
		{"signing failure", errors.New("no credentials"), http.StatusInternalServerError, "UPLOAD_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupControllerTest(t)
			router.POST("/upload", NewUploadController(&fakePresigner{err: tt.err}).GeneratePresignedURL)

			w := doJSON(t, router, http.MethodPost, "/upload", map[string]string{
				"filename":     "a.exe",
				"content_type": "application/octet-stream",
			})
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w)["error"])
		})
	}
}
