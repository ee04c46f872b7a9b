package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Errors())
	r.GET("/private", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("dsn: password")).
			SetType(gin.ErrorTypePrivate)
	})
	r.GET("/public", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusServiceUnavailable, errors.New("merchant is not configured")).
			SetType(gin.ErrorTypePublic)
	})
	r.GET("/written", func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		_ = c.Error(errors.New("token signature")).SetType(gin.ErrorTypePrivate)
	})

	cases := []struct {
		path       string
		accept     string
		wantStatus int
		wantBody   string
	}{
		{path: "/private", wantStatus: http.StatusInternalServerError, wantBody: `{"error":"internal server error"}`},
		{path: "/private", accept: "text/plain", wantStatus: http.StatusInternalServerError, wantBody: "internal server error"},
		{path: "/public", wantStatus: http.StatusServiceUnavailable, wantBody: `{"error":"merchant is not configured"}`},
		{path: "/written", wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Unauthorized"}`},
	}
	for _, tc := range cases {
		t.Run(tc.path+tc.accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.accept != "" {
				req.Header.Set("Accept", tc.accept)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantBody, rec.Body.String())
		})
	}
}
