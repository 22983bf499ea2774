package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	saved       map[string][]byte
	contentType string
	err         error
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: map[string][]byte{}}
}

func (f *fakeStore) Save(_ context.Context, name, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved[name] = data
	f.contentType = contentType
	return "/uploads/" + name, nil
}

func multipartUpload(t *testing.T, filename, contentType, kind string, data []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	if kind != "" {
		require.NoError(t, writer.WriteField("kind", kind))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	store := newFakeStore()
	handler := newUploadHandler(store)

	rec := httptest.NewRecorder()
	handler.upload()(rec, multipartUpload(t, "photo.png", "image/png", "", []byte("png-bytes")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"/uploads/image-`)
	assert.Len(t, store.saved, 1)
	assert.Equal(t, "image/png", store.contentType)
}

func TestUploadResumePDF(t *testing.T) {
	store := newFakeStore()
	handler := newUploadHandler(store)

	rec := httptest.NewRecorder()
	handler.upload()(rec, multipartUpload(t, "resume.pdf", "application/pdf", "resume", []byte("%PDF-1.4")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"/uploads/resume-`)
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	store := newFakeStore()
	handler := newUploadHandler(store)

	oversized := make([]byte, 2*1024*1024+1)
	rec := httptest.NewRecorder()
	handler.upload()(rec, multipartUpload(t, "big.png", "image/png", "", oversized))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"File size should be less than 2MB"}`, rec.Body.String())
	assert.Empty(t, store.saved)
}

func TestUploadRejectsOversizedResume(t *testing.T) {
	store := newFakeStore()
	handler := newUploadHandler(store)

	oversized := make([]byte, 6*1024*1024)
	rec := httptest.NewRecorder()
	handler.upload()(rec, multipartUpload(t, "resume.pdf", "application/pdf", "resume", oversized))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"File size should be less than 5MB"}`, rec.Body.String())
	assert.Empty(t, store.saved)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	store := newFakeStore()
	handler := newUploadHandler(store)

	rec := httptest.NewRecorder()
	handler.upload()(rec, multipartUpload(t, "script.svg", "image/svg+xml", "", []byte("<svg/>")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.saved)
}

func TestUploadRejectsUnknownKind(t *testing.T) {
	store := newFakeStore()
	handler := newUploadHandler(store)

	rec := httptest.NewRecorder()
	handler.upload()(rec, multipartUpload(t, "photo.png", "image/png", "video", []byte("data")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"unknown upload kind"}`, rec.Body.String())
}

func TestUploadMissingFile(t *testing.T) {
	store := newFakeStore()
	handler := newUploadHandler(store)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("kind", "image"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	handler.upload()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No file provided"}`, rec.Body.String())
}

func TestUploadStorageFailure(t *testing.T) {
	store := newFakeStore()
	store.err = assert.AnError
	handler := newUploadHandler(store)

	rec := httptest.NewRecorder()
	handler.upload()(rec, multipartUpload(t, "photo.png", "image/png", "", []byte("png-bytes")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to upload file")
	assert.Empty(t, store.saved)
}
