package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-sleep-remind/internal/app"
	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/handler"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/kvstore"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-sleep-remind/internal/testutil"
)

func setupRouter(t *testing.T, useCase app.SleepReminderUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := handler.NewSleepHandler(useCase)

	router := gin.New()
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	return router
}

func setupRealRouter(t *testing.T) (*gin.Engine, *testutil.FakeGateway) {
	t.Helper()

	gateway := testutil.NewFakeGateway()
	repo := repository.NewScheduleRepository(kvstore.NewMemoryStore())
	useCase := app.NewSleepReminderUseCase(gateway, repo,
		app.WithSweepPolicy(app.SweepPolicy{Attempts: 3, Backoff: 0}),
	)

	return setupRouter(t, useCase), gateway
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)

		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestSleepHandlerScheduleLifecycle(t *testing.T) {
	router, gateway := setupRealRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/sleep/schedule", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/sleep/schedule", map[string]string{
		"bedtime": "23:00",
		"wakeup":  "07:00",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated handler.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "23:00", updated.Bedtime)
	assert.Equal(t, "07:00", updated.Wakeup)
	assert.NotEmpty(t, updated.BedtimeHandle)
	assert.NotEmpty(t, updated.WakeupHandle)
	assert.True(t, updated.Complete)
	assert.Len(t, gateway.Scheduled(), 2)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sleep/schedule", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var current handler.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &current))
	assert.Equal(t, updated.BedtimeHandle, current.BedtimeHandle)
	assert.Equal(t, updated.WakeupHandle, current.WakeupHandle)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/sleep/schedule", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, gateway.Scheduled())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sleep/schedule", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSleepHandlerInitialize(t *testing.T) {
	router, gateway := setupRealRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/sleep/initialize", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.InitializeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Nil(t, resp.Schedule)
	assert.Equal(t, []string{"sleep-bedtime", "sleep-wakeup"}, gateway.Channels())
}

func TestSleepHandlerInitializePermissionDenied(t *testing.T) {
	router, gateway := setupRealRouter(t)
	gateway.Granted = false

	rec := doJSON(t, router, http.MethodPost, "/api/v1/sleep/initialize", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "permission_denied", resp.Error)
}

func TestSleepHandlerUpdateValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      any
		wantField string
	}{
		{
			name:      "malformed json",
			body:      "{",
			wantField: "",
		},
		{
			name:      "missing bedtime",
			body:      map[string]string{"wakeup": "07:00"},
			wantField: "bedtime",
		},
		{
			name:      "bedtime out of range",
			body:      map[string]string{"bedtime": "25:00", "wakeup": "07:00"},
			wantField: "bedtime",
		},
		{
			name:      "wakeup not HH:mm",
			body:      map[string]string{"bedtime": "23:00", "wakeup": "7am"},
			wantField: "wakeup",
		},
		{
			name:      "identical times",
			body:      map[string]string{"bedtime": "07:00", "wakeup": "07:00"},
			wantField: "wakeup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, gateway := setupRealRouter(t)

			rec := doJSON(t, router, http.MethodPut, "/api/v1/sleep/schedule", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp handler.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "validation_error", resp.Error)
			assert.Equal(t, tt.wantField, resp.Field)
			assert.Zero(t, gateway.ScheduleCalls)
		})
	}
}

func TestSleepHandlerUpdatePartialFailure(t *testing.T) {
	router, gateway := setupRealRouter(t)
	gateway.ScheduleErr[domain.KindWakeup] = errors.New("alarm service unavailable")

	rec := doJSON(t, router, http.MethodPut, "/api/v1/sleep/schedule", map[string]string{
		"bedtime": "23:00",
		"wakeup":  "07:00",
	})
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp handler.SchedulingErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "scheduling_failed", resp.Error)
	assert.NotEmpty(t, resp.Schedule.BedtimeHandle)
	assert.Empty(t, resp.Schedule.WakeupHandle)
	assert.False(t, resp.Schedule.Complete)
}

func TestSleepHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		setup      func(m *app.MockSleepReminderUseCase)
		wantStatus int
		wantError  string
	}{
		{
			name:   "initialize internal error",
			method: http.MethodPost,
			path:   "/api/v1/sleep/initialize",
			setup: func(m *app.MockSleepReminderUseCase) {
				m.EXPECT().Initialize(gomock.Any()).Return(fmt.Errorf("%w: disk full", app.ErrInternalError))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal_error",
		},
		{
			name:   "get schedule store failure",
			method: http.MethodGet,
			path:   "/api/v1/sleep/schedule",
			setup: func(m *app.MockSleepReminderUseCase) {
				m.EXPECT().GetCurrentSchedule(gomock.Any()).Return(nil, app.ErrInternalError)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal_error",
		},
		{
			name:   "update permission denied",
			method: http.MethodPut,
			path:   "/api/v1/sleep/schedule",
			setup: func(m *app.MockSleepReminderUseCase) {
				m.EXPECT().UpdateSchedule(gomock.Any(), app.UpdateScheduleInput{Bedtime: "23:00", Wakeup: "07:00"}).
					Return(app.ScheduleOutput{}, app.ErrPermissionDenied)
			},
			wantStatus: http.StatusForbidden,
			wantError:  "permission_denied",
		},
		{
			name:   "delete internal error",
			method: http.MethodDelete,
			path:   "/api/v1/sleep/schedule",
			setup: func(m *app.MockSleepReminderUseCase) {
				m.EXPECT().CancelAll(gomock.Any()).Return(app.ErrInternalError)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			useCase := app.NewMockSleepReminderUseCase(ctrl)
			tt.setup(useCase)

			router := setupRouter(t, useCase)

			var body any
			if tt.method == http.MethodPut {
				body = map[string]string{"bedtime": "23:00", "wakeup": "07:00"}
			}

			rec := doJSON(t, router, tt.method, tt.path, body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handler.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}
