package providers

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/lquan-tech/porfolio/internal/structures"
)

// GzipMiddleware compresses responses when the config enables it. The
// presence view with a full activity list compresses well; everything else
// is small enough that the pass-through cost does not matter.
func GzipMiddleware(conf *structures.Config, next http.Handler) http.Handler {
	if !conf.WebServer.Compression {
		return next
	}
	return gzhttp.GzipHandler(next)
}
