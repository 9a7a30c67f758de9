package static

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"devserve/core/middleware/nocache"
	"devserve/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, string) {
	root := t.TempDir()

	app := fiber.New()
	app.Use(nocache.New())

	feature := NewFeature(server.Config{Root: root, Index: "index.html"}, zap.NewNop())
	require.NoError(t, feature.Load(app))

	return app, root
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
}

func TestServeExistingFile(t *testing.T) {
	app, root := setupTestApp(t)
	writeFile(t, root, "hello.txt", "hello, world\n")

	req := httptest.NewRequest("GET", "/hello.txt", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello, world\n", string(body))

	assert.Equal(t, nocache.CacheControlValue, resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, nocache.PragmaValue, resp.Header.Get(fiber.HeaderPragma))
	assert.Equal(t, nocache.ExpiresValue, resp.Header.Get(fiber.HeaderExpires))
}

func TestServeMissingFile(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/nope.txt", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 404, resp.StatusCode)
	// Error responses still carry the no-cache headers
	assert.Equal(t, nocache.CacheControlValue, resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, nocache.PragmaValue, resp.Header.Get(fiber.HeaderPragma))
	assert.Equal(t, nocache.ExpiresValue, resp.Header.Get(fiber.HeaderExpires))
}

func TestServeIndexForRoot(t *testing.T) {
	app, root := setupTestApp(t)
	writeFile(t, root, "index.html", "<html>home</html>")

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "<html>home</html>", string(body))
}

func TestSequentialRequestsStayFresh(t *testing.T) {
	app, root := setupTestApp(t)
	writeFile(t, root, "app.js", "console.log(1)")

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/app.js", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, []string{nocache.CacheControlValue}, resp.Header.Values(fiber.HeaderCacheControl))
		assert.Equal(t, []string{nocache.PragmaValue}, resp.Header.Values(fiber.HeaderPragma))
		assert.Equal(t, []string{nocache.ExpiresValue}, resp.Header.Values(fiber.HeaderExpires))
	}
}

func TestLoader(t *testing.T) {
	feature := NewFeature(server.Config{Root: ".", Index: "index.html"}, zap.NewNop())

	assert.Equal(t, "static", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}

func TestLoad_MissingRoot(t *testing.T) {
	feature := NewFeature(server.Config{Root: "/does/not/exist"}, zap.NewNop())

	app := fiber.New()
	err := feature.Load(app)
	assert.Error(t, err)
}

func TestLoad_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "x")

	feature := NewFeature(server.Config{Root: filepath.Join(root, "file.txt")}, zap.NewNop())

	app := fiber.New()
	err := feature.Load(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
