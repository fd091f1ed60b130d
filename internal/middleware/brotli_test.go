package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brotliTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Brotli())
	r.GET("/export", handler)
	return r
}

func requestBr(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	req.Header.Set("Accept-Encoding", "br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBrotli_ChunkedBodyWithPartialTailDecodes(t *testing.T) {
	// 2400 bytes written in 12-byte chunks: compression kicks in past
	// MinLength and the final chunks leave a partial buffer behind, which
	// must still come out through the brotli stream.
	payload := bytes.Repeat([]byte("r1,student,a"), 200)

	r := brotliTestRouter(func(c *gin.Context) {
		c.Header("Content-Type", "text/csv")
		for i := 0; i < len(payload); i += 12 {
			_, err := c.Writer.Write(payload[i : i+12])
			require.NoError(t, err)
		}
	})
	w := requestBr(t, r)

	require.Equal(t, "br", w.Header().Get("Content-Encoding"))

	decoded, err := io.ReadAll(brotli.NewReader(w.Body))
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestBrotli_MidStreamFlushKeepsStreamDecodable(t *testing.T) {
	payload := bytes.Repeat([]byte("attendance-export-line-"), 120)
	half := len(payload) / 2

	r := brotliTestRouter(func(c *gin.Context) {
		_, err := c.Writer.Write(payload[:half])
		require.NoError(t, err)
		c.Writer.(http.Flusher).Flush()
		_, err = c.Writer.Write(payload[half:])
		require.NoError(t, err)
	})
	w := requestBr(t, r)

	require.Equal(t, "br", w.Header().Get("Content-Encoding"))

	decoded, err := io.ReadAll(brotli.NewReader(w.Body))
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestBrotli_SmallBodyStaysUncompressed(t *testing.T) {
	r := brotliTestRouter(func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	w := requestBr(t, r)

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "ok", w.Body.String())
}

func TestBrotli_SkippedWithoutAcceptEncoding(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 4096)
	r := brotliTestRouter(func(c *gin.Context) {
		_, _ = c.Writer.Write(payload)
	})

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, w.Body.Bytes())
}
