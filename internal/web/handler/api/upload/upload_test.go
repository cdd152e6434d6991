package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdeck/linkdeck/internal/config"
	uploadstore "github.com/linkdeck/linkdeck/internal/upload"
	"github.com/linkdeck/linkdeck/internal/web/handler"
)

func newTestApp(t *testing.T, root string) *fiber.App {
	t.Helper()

	app := fiber.New()

	service := &Service{}
	err := service.Init(app, &config.Config{}, &handler.Deps{
		Uploads: uploadstore.New(root),
	})
	require.NoError(t, err)

	return app
}

func multipartBody(t *testing.T, folder, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)

	part, err := writer.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)

	if folder != "" {
		require.NoError(t, writer.WriteField("folder", folder))
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestService_Post_StoresImage(t *testing.T) {
	root := t.TempDir()
	app := newTestApp(t, root)

	body, contentType := multipartBody(t, "avatar", "me.png", "image/png", []byte("png-bytes"))

	req := httptest.NewRequest(http.MethodPost, Path, body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	url := payload["url"]
	assert.True(t, strings.HasPrefix(url, "/uploads/avatar/"), url)
	assert.True(t, strings.HasSuffix(url, "_me.png"), url)

	// the object must exist on disk under the root
	stored, err := os.ReadFile(filepath.Join(root, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestService_Post_RejectsDisallowedType(t *testing.T) {
	root := t.TempDir()
	app := newTestApp(t, root)

	body, contentType := multipartBody(t, "links", "doc.pdf", "application/pdf", []byte("%PDF"))

	req := httptest.NewRequest(http.MethodPost, Path, body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// nothing may be written for a rejected upload
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_Post_MissingFileField(t *testing.T) {
	app := newTestApp(t, t.TempDir())

	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(""))

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestService_Post_UploadsDisabled(t *testing.T) {
	app := newTestApp(t, "")

	body, contentType := multipartBody(t, "avatar", "me.png", "image/png", []byte("png-bytes"))

	req := httptest.NewRequest(http.MethodPost, Path, body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
