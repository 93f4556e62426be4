package static

import (
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/trailhead-labs/switchback/http/message"
	"github.com/trailhead-labs/switchback/http/middleware"
	"github.com/trailhead-labs/switchback/logger"
)

// publicDir is the subdirectory under a Resolver's root holding servable assets.
const publicDir = "Public"

// A FileSystem exposes the two filesystem operations a Resolver composes.
//
// The existence check and the read are separate calls;
// a file vanishing between them is tolerated, not eliminated.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// osFS implements FileSystem against the host filesystem.
type osFS struct{}

func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (osFS) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) }

// A Resolver serves files found under a root directory's public assets folder,
// acting as the fallback responder source when no route matches.
type Resolver struct {
	root string
	l    logger.Logger
	fsys FileSystem
}

// A ResolverOptFn is a functional option configuring a Resolver when constructing a new one.
type ResolverOptFn func(*Resolver)

// WithFS sets the FileSystem the Resolver checks and reads files with.
func WithFS(fsys FileSystem) ResolverOptFn {
	return func(res *Resolver) {
		res.fsys = fsys
	}
}

// New constructs a *Resolver serving files under root's "Public" directory.
func New(root string, l logger.Logger, opts ...ResolverOptFn) *Resolver {
	res := &Resolver{root: root, l: l, fsys: osFS{}}
	for _, opt := range opts {
		opt(res)
	}

	if res.l == nil {
		res.l = logger.NewLogger()
	}

	return res
}

// Resolve checks whether a file exists for the request path,
// returning a [middleware.Responder] serving it when one does.
//
// Candidate paths escaping the public directory
// (e.g., through ".." components) resolve as not found.
//
// The returned Responder rereads the file when invoked.
// If the file vanished or turned unreadable in between,
// it logs a warning and responds 404 rather than failing.
func (res *Resolver) Resolve(requestPath string) (middleware.Responder, bool) {
	base := filepath.Join(res.root, publicDir)
	candidate := filepath.Join(base, filepath.FromSlash(requestPath))
	if !strings.HasPrefix(candidate, base+string(filepath.Separator)) {
		return nil, false
	}

	info, err := res.fsys.Stat(candidate)
	if err != nil || info.IsDir() {
		return nil, false
	}

	return middleware.ResponderFunc(func(*message.Request) (*message.Response, error) {
		b, err := res.fsys.ReadFile(candidate)
		if err != nil {
			res.l.Warn(fmt.Sprintf("could not read asset %s", candidate), &logger.LogContext{Error: err})
			return message.Text(http.StatusNotFound, "Page not found"), nil
		}

		resp := message.NewResponse(http.StatusOK)
		resp.Body = b
		if mediaType := mime.TypeByExtension(path.Ext(requestPath)); mediaType != "" {
			resp.Header.Set("Content-Type", mediaType)
		}

		return resp, nil
	}), true
}
