package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	readAll := func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusBadRequest, "truncated")
			return
		}
		c.String(http.StatusOK, "ok")
	}

	tests := []struct {
		name   string
		limit  int64
		body   string
		length int64
		status int
	}{
		{"within limit", 64, "small", 5, http.StatusOK},
		{"declared length too large", 64, strings.Repeat("x", 100), 100, http.StatusRequestEntityTooLarge},
		{"streamed body is capped", 50, strings.Repeat("x", 100), -1, http.StatusBadRequest},
		{"limit disabled", 0, strings.Repeat("x", 100), 100, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(BodyLimit(tt.limit))
			r.POST("/orders", readAll)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tt.body))
			req.ContentLength = tt.length
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusRequestEntityTooLarge {
				assert.JSONEq(t, `{"error":"Request body too large","code":"REQUEST_TOO_LARGE"}`, w.Body.String())
			}
		})
	}
}
