package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockhandler "server-dashboard/internal/server-service/mocks/api/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func namedHandler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, name)
	}
}

func TestSetUpServerRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHandler := mockhandler.NewMockServerHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	mockHandler.EXPECT().GetServers().Return(namedHandler("list"))
	mockHandler.EXPECT().CreateServer().Return(namedHandler("create"))
	mockHandler.EXPECT().RefreshServers().Return(namedHandler("refresh"))
	mockHandler.EXPECT().ReportServersInformation().Return(namedHandler("report"))
	mockHandler.EXPECT().ExportServersToCSV().Return(namedHandler("csv"))
	mockHandler.EXPECT().ExportServersToExcel().Return(namedHandler("xlsx"))
	mockHandler.EXPECT().GetServerById().Return(namedHandler("get"))
	mockHandler.EXPECT().UpdateServer().Return(namedHandler("update"))
	mockHandler.EXPECT().DeleteServer().Return(namedHandler("delete"))
	mockHandler.EXPECT().CheckServer().Return(namedHandler("check"))
	mockHandler.EXPECT().GetServerVersion().Return(namedHandler("version"))
	mockHandler.EXPECT().GetServerUptimePercentage().Return(namedHandler("uptime"))

	AddServerRoutes(r, mockHandler)

	testCases := []struct {
		name            string
		method          string
		path            string
		expectedStatus  int
		expectedHandler string
	}{
		{name: "Get Servers Route", method: http.MethodGet, path: "/api/servers", expectedStatus: http.StatusOK, expectedHandler: "list"},
		{name: "Create Server Route", method: http.MethodPost, path: "/api/servers", expectedStatus: http.StatusOK, expectedHandler: "create"},
		{name: "Refresh Route", method: http.MethodPost, path: "/api/servers/refresh", expectedStatus: http.StatusOK, expectedHandler: "refresh"},
		{name: "Report Route", method: http.MethodPost, path: "/api/servers/report", expectedStatus: http.StatusOK, expectedHandler: "report"},
		{name: "Export CSV Route", method: http.MethodGet, path: "/api/servers/export/csv", expectedStatus: http.StatusOK, expectedHandler: "csv"},
		{name: "Export XLSX Route", method: http.MethodGet, path: "/api/servers/export/xlsx", expectedStatus: http.StatusOK, expectedHandler: "xlsx"},
		{name: "Get Server Route", method: http.MethodGet, path: "/api/servers/12", expectedStatus: http.StatusOK, expectedHandler: "get"},
		{name: "Update Server Route", method: http.MethodPut, path: "/api/servers/12", expectedStatus: http.StatusOK, expectedHandler: "update"},
		{name: "Delete Server Route", method: http.MethodDelete, path: "/api/servers/12", expectedStatus: http.StatusOK, expectedHandler: "delete"},
		{name: "Check Server Route", method: http.MethodPost, path: "/api/servers/12/check", expectedStatus: http.StatusOK, expectedHandler: "check"},
		{name: "Version Route", method: http.MethodGet, path: "/api/servers/12/version", expectedStatus: http.StatusOK, expectedHandler: "version"},
		{name: "Uptime Route", method: http.MethodGet, path: "/api/servers/12/uptime", expectedStatus: http.StatusOK, expectedHandler: "uptime"},
		{name: "Patch is not routed", method: http.MethodPatch, path: "/api/servers/12", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedHandler != "" {
				assert.Equal(t, tc.expectedHandler, w.Body.String())
			}
		})
	}
}

func TestSetUpMonitorRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHandler := mockhandler.NewMockMonitorHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	mockHandler.EXPECT().GetStatus().Return(namedHandler("status"))
	mockHandler.EXPECT().SetInterval().Return(namedHandler("interval"))

	AddMonitorRoutes(r, mockHandler)
	AddHomeRoutes(r)

	testCases := []struct {
		name            string
		method          string
		path            string
		expectedHandler string
	}{
		{name: "Status Route", method: http.MethodGet, path: "/api/monitor/status", expectedHandler: "status"},
		{name: "Interval Route", method: http.MethodPut, path: "/api/monitor/interval", expectedHandler: "interval"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.expectedHandler, w.Body.String())
		})
	}

	t.Run("Home Route", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Server Dashboard API")
	})
}

func TestSetUpPodRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHandler := mockhandler.NewMockPodHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	mockHandler.EXPECT().GetPods().Return(namedHandler("pods"))
	mockHandler.EXPECT().GetPodByName().Return(namedHandler("pod"))
	mockHandler.EXPECT().GetPodsSummary().Return(namedHandler("summary"))
	mockHandler.EXPECT().GetNamespace().Return(namedHandler("namespace"))
	mockHandler.EXPECT().GetInfo().Return(namedHandler("info"))
	mockHandler.EXPECT().ExportPodsToCSV().Return(namedHandler("csv"))

	AddPodRoutes(r, mockHandler)

	testCases := []struct {
		name            string
		method          string
		path            string
		expectedStatus  int
		expectedHandler string
	}{
		{name: "Pods Route", method: http.MethodGet, path: "/api/pods/pods", expectedStatus: http.StatusOK, expectedHandler: "pods"},
		{name: "Pod Route", method: http.MethodGet, path: "/api/pods/pods/billing", expectedStatus: http.StatusOK, expectedHandler: "pod"},
		{name: "Summary Route", method: http.MethodGet, path: "/api/pods/summary", expectedStatus: http.StatusOK, expectedHandler: "summary"},
		{name: "Namespace Route", method: http.MethodGet, path: "/api/pods/namespace", expectedStatus: http.StatusOK, expectedHandler: "namespace"},
		{name: "Info Route", method: http.MethodGet, path: "/api/pods/info", expectedStatus: http.StatusOK, expectedHandler: "info"},
		{name: "Export CSV Route", method: http.MethodGet, path: "/api/pods/export/csv", expectedStatus: http.StatusOK, expectedHandler: "csv"},
		{name: "Post is not routed", method: http.MethodPost, path: "/api/pods/pods", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedHandler != "" {
				assert.Equal(t, tc.expectedHandler, w.Body.String())
			}
		})
	}
}
