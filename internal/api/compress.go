package api

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// compressionMiddleware gzips responses for clients that accept it.
// gzhttp skips bodies below its minimum size.
func compressionMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
