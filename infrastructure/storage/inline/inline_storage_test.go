package inline

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// สร้าง *multipart.FileHeader จริงจาก multipart form จำลอง
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("screenshot", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["screenshot"][0]
}

func TestUploadImageEncodesDataURL(t *testing.T) {
	storage := NewInlineStorage()

	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}
	result, err := storage.UploadImage(fileHeader(t, "shot.png", content), "testers-note")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "data:"), "URL should be a data URL, got %s", result.URL)
	assert.Empty(t, result.PublicID, "inline storage has nothing to release")
	assert.Equal(t, len(content), result.Size)

	// ส่วน base64 ต้อง decode กลับมาเป็น byte เดิมได้
	idx := strings.Index(result.URL, ";base64,")
	require.Positive(t, idx)
	decoded, err := base64.StdEncoding.DecodeString(result.URL[idx+len(";base64,"):])
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestDeleteFileIsNoOp(t *testing.T) {
	storage := NewInlineStorage()

	assert.NoError(t, storage.DeleteFile(""))
	assert.NoError(t, storage.DeleteFile("anything"))
}
