package guide_test

import (
	"mime"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/guide"
	"github.com/trailhead-labs/switchback/http/message"
	"github.com/trailhead-labs/switchback/http/middleware"
	"github.com/trailhead-labs/switchback/http/router"
	"github.com/trailhead-labs/switchback/logger"
)

// muteLogger drops everything so tests stay quiet.
type muteLogger struct{}

func (muteLogger) Debug(string, *logger.LogContext) {}
func (muteLogger) Error(string, *logger.LogContext) {}
func (muteLogger) Fatal(string, *logger.LogContext) {}
func (muteLogger) Info(string, *logger.LogContext)  {}
func (muteLogger) Warn(string, *logger.LogContext)  {}
func (muteLogger) LogLevel() logger.LogLevel        { return logger.LogLevelFatal }

func newGuide(t *testing.T, opts ...guide.GuideOptFn) *guide.Guide {
	t.Helper()

	g, err := guide.New(append([]guide.GuideOptFn{
		guide.WithEnv(switchback.Testing.String()),
		guide.WithLogger(muteLogger{}),
		guide.WithStaticDir(t.TempDir()),
	}, opts...)...)
	require.NoError(t, err)

	return g
}

func TestNewRejectsBadEnv(t *testing.T) {
	_, err := guide.New(guide.WithEnv("not-an-env"))
	require.ErrorIs(t, err, switchback.ErrBadConfig)
}

func TestGuideServesRoutedRequest(t *testing.T) {
	// Arrange
	g := newGuide(t)
	g.Handle(router.Route{
		Method: message.MethodGet,
		Path:   "/hello/{name}",
		Handler: middleware.ResponderFunc(func(r *message.Request) (*message.Response, error) {
			return message.Text(http.StatusOK, "hello, "+r.Params["name"]), nil
		}),
	})

	w := httptest.NewRecorder()

	// Act
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello/scout", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "hello, scout", w.Body.String())
	require.NotEmpty(t, w.Result().Header.Get("Date"))
	require.Equal(t, "switchback/"+switchback.Version, w.Result().Header.Get("Server"))
}

func TestGuideServesStaticFallback(t *testing.T) {
	// Arrange
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Public"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Public", "style.css"), []byte("body{}"), 0644))

	g := newGuide(t, guide.WithStaticDir(root))
	w := httptest.NewRecorder()

	// Act
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/style.css", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "body{}", w.Body.String())
	require.Equal(t, mime.TypeByExtension(".css"), w.Result().Header.Get("Content-Type"))
}

func TestGuideServesNotFound(t *testing.T) {
	// Arrange
	g := newGuide(t)
	w := httptest.NewRecorder()

	// Act
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Page not found", w.Body.String())
	require.NotEmpty(t, w.Result().Header.Get("Server"))
}

func TestGuideAppliesMiddleware(t *testing.T) {
	// Arrange
	g := newGuide(t)
	g.OnEveryRequest(func(next middleware.Responder) middleware.Responder {
		return middleware.ResponderFunc(func(r *message.Request) (*message.Response, error) {
			resp, err := next.Respond(r)
			if resp != nil {
				resp.Header.Set("X-Trail", "blazed")
			}
			return resp, err
		})
	})

	w := httptest.NewRecorder()

	// Act
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	// Assert -- middleware wraps even the built-in 404
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "blazed", w.Result().Header.Get("X-Trail"))
}

func TestGuideBridgesRequestBody(t *testing.T) {
	// Arrange
	var form string
	g := newGuide(t)
	g.Handle(router.Route{
		Method: message.MethodPost,
		Path:   "/login",
		Handler: middleware.ResponderFunc(func(r *message.Request) (*message.Response, error) {
			form = r.Form().Get("user")
			return message.Text(http.StatusOK, "ok"), nil
		}),
	})

	body := strings.NewReader("user=scout")
	rx := httptest.NewRequest(http.MethodPost, "/login", body)
	rx.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	// Act
	g.ServeHTTP(w, rx)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "scout", form)
}

func TestGuideProductionHidesFailureDetail(t *testing.T) {
	// Arrange
	g := newGuide(t, guide.WithEnv(switchback.Production.String()))
	g.Handle(router.Route{
		Method: message.MethodGet,
		Path:   "/explode",
		Handler: middleware.ResponderFunc(func(*message.Request) (*message.Response, error) {
			panic("boom")
		}),
	})

	w := httptest.NewRecorder()

	// Act
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/explode", nil))

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Something went wrong", w.Body.String())
	require.NotContains(t, w.Body.String(), "boom")
}
