package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/t/:id", handler)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/t/1", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"invalid argument", apperrors.NewInvalidArgumentError("Student with id %d not found", 9), http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"not found", apperrors.NewResourceNotFoundError("Group with id %d not found", 9), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"unique violation", apperrors.NewDataAccessError(&pgconn.PgError{Code: "23505", ConstraintName: "groups_name_key"}, "inserting group"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"other unique violation", apperrors.NewDataAccessError(&pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}, "inserting student"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"foreign key violation", apperrors.NewDataAccessError(&pgconn.PgError{Code: "23503"}, "inserting student"), http.StatusConflict, dto.ErrorCodeResourceInvalid},
		{"data access", apperrors.NewDataAccessError(errors.New("connection refused"), "loading all groups"), http.StatusInternalServerError, dto.ErrorCodeDatabaseError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(func(c *gin.Context) { HandleAPIError(c, tt.err) })
			assert.Equal(t, tt.status, w.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestInvalidArgumentMessageIsReturned(t *testing.T) {
	w := serve(func(c *gin.Context) {
		HandleAPIError(c, apperrors.NewInvalidArgumentError("Course with id %d not found", 3))
	})

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Course with id 3 not found", body.Error.Message)
}

func TestRequestIDHeader(t *testing.T) {
	w := serve(func(c *gin.Context) { c.Status(http.StatusNoContent) })
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestParseIDParam(t *testing.T) {
	r := gin.New()
	r.GET("/t/:id", func(c *gin.Context) {
		id, ok := ParseIDParam(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	for path, status := range map[string]int{"/t/12": 200, "/t/abc": 400, "/t/0": 400, "/t/-4": 400} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, status, w.Code, path)
	}
}

func TestMetricsCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	router := gin.New()
	router.Use(metrics.Handler())
	router.GET("/groups/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/groups/1", "/groups/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/groups/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
