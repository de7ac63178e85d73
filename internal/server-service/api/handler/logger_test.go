package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"server-dashboard/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func setupTestContext(w *httptest.ResponseRecorder, method, path string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, path, nil)
	return c
}

func TestLogger_LoggingError(t *testing.T) {
	testCases := []struct {
		name                 string
		setupContext         func(c *gin.Context)
		err                  error
		errDescription       string
		logLevel             zapcore.Level
		expectedToContain    []string
		expectedToNotContain []string
	}{
		{
			name:           "Success - Logs basic info without request id",
			setupContext:   func(c *gin.Context) {},
			err:            errors.New("database connection failed"),
			errDescription: "Failed to connect to the database",
			logLevel:       zapcore.ErrorLevel,
			expectedToContain: []string{
				`"level":"error"`,
				`"msg":"Failed to connect to the database"`,
				`"error":"database connection failed"`,
				`"http_method":"GET"`,
				`"http_path":"/test-path"`,
			},
			expectedToNotContain: []string{
				"request_id",
			},
		},
		{
			name: "Success - Logs request id when present in context",
			setupContext: func(c *gin.Context) {
				c.Set(middleware.RequestIDKey, "req-123")
			},
			err:            errors.New("server not found"),
			errDescription: "failed to get server",
			logLevel:       zapcore.WarnLevel,
			expectedToContain: []string{
				`"level":"warn"`,
				`"msg":"failed to get server"`,
				`"error":"server not found"`,
				`"request_id":"req-123"`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buffer bytes.Buffer
			encoderConfig := zap.NewProductionEncoderConfig()
			core := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(&buffer),
				zapcore.DebugLevel,
			)
			logger := NewLogger(zap.New(core))

			w := httptest.NewRecorder()
			c := setupTestContext(w, "GET", "/test-path")
			tc.setupContext(c)

			logger.LoggingError(c, tc.err, tc.errDescription, tc.logLevel)
			logOutput := buffer.String()
			for _, expected := range tc.expectedToContain {
				assert.Contains(t, logOutput, expected)
			}
			for _, notExpected := range tc.expectedToNotContain {
				assert.NotContains(t, logOutput, notExpected)
			}
		})
	}
}
