package webserver

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/zstd"
)

type compressResponseWriter struct {
	http.ResponseWriter
	writer io.Writer
}

func (w *compressResponseWriter) Write(b []byte) (int, error) {
	return w.writer.Write(b)
}

// CompressionMiddleware compresses responses when the client accepts
// it, preferring zstd over gzip.
func CompressionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acceptEncoding := r.Header.Get("Accept-Encoding")

		var (
			writer   io.WriteCloser
			encoding string
		)

		switch {
		case strings.Contains(acceptEncoding, "zstd"):
			encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
			if err == nil {
				writer = encoder
				encoding = "zstd"
			}
		case strings.Contains(acceptEncoding, "gzip"):
			writer = gzip.NewWriter(w)
			encoding = "gzip"
		}

		if encoding == "" {
			next.ServeHTTP(w, r)
			return
		}

		defer writer.Close()

		w.Header().Set("Content-Encoding", encoding)
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length") // Can't know compressed size

		next.ServeHTTP(&compressResponseWriter{ResponseWriter: w, writer: writer}, r)
	})
}
