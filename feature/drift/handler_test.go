package drift

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"wiring-guard/feature/drift/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(fs afero.Fs) *fiber.App {
	app := fiber.New()
	svc := NewService(fs, checks.DefaultLayout(), zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func getJSON(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleDriftCheck(t *testing.T) {
	app := setupTestApp(newTestFs(t))

	status, body := getJSON(t, app, "/drift")
	assert.Equal(t, 200, status)
	assert.Equal(t, "drift", body["status"])
	assert.Equal(t, "main.rs", body["source"])
	assert.Equal(t, []any{
		"template about.tera missing from main.rs",
		"static file app.js missing from main.rs",
	}, body["missing"])
}

func TestHandleDriftCheck_InSync(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "src/main.rs", []byte("// ../templates/a.tera\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "templates/a.tera", nil, 0o644))
	app := setupTestApp(fs)

	status, body := getJSON(t, app, "/drift")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Empty(t, body["missing"])
}

func TestHandleDriftCheck_MissingSource(t *testing.T) {
	app := setupTestApp(afero.NewMemMapFs())

	status, body := getJSON(t, app, "/drift")
	assert.Equal(t, 500, status)
	assert.Contains(t, body["error"], "source file")
}

func TestHandleKindChecks(t *testing.T) {
	app := setupTestApp(newTestFs(t))

	status, body := getJSON(t, app, "/drift/templates")
	assert.Equal(t, 200, status)
	assert.Equal(t, []any{"template about.tera missing from main.rs"}, body["missing"])

	status, body = getJSON(t, app, "/drift/static")
	assert.Equal(t, 200, status)
	assert.Equal(t, []any{"static file app.js missing from main.rs"}, body["missing"])
}
