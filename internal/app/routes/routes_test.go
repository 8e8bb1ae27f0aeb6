package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradebook/internal/app/controllers"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

type stubGradeBook struct {
	services.GradeBookService

	groups   map[int64]*models.Group
	students []*models.Student
	added    *models.Grade
	storeErr error
}

func (s *stubGradeBook) CreateGroup(_ context.Context, name string, year *int) (*models.Group, error) {
	for _, g := range s.groups {
		if g.Name == name {
			return g, nil
		}
	}
	g := &models.Group{ID: int64(len(s.groups) + 1), Name: name, Year: year}
	s.groups[g.ID] = g
	return g, nil
}

func (s *stubGradeBook) GetGroup(_ context.Context, id int64) (*models.Group, error) {
	if s.storeErr != nil {
		return nil, s.storeErr
	}
	return s.groups[id], nil
}

func (s *stubGradeBook) DeleteGroup(_ context.Context, id int64) (bool, error) {
	_, ok := s.groups[id]
	delete(s.groups, id)
	return ok, nil
}

func (s *stubGradeBook) GetAllStudents(context.Context) ([]*models.Student, error) {
	return s.students, nil
}

func (s *stubGradeBook) AddGrade(_ context.Context, studentID, courseID int64, teacherID *int64, value float64, date *time.Time) (*models.Grade, error) {
	if studentID == 404 {
		return nil, apperrors.NewInvalidArgumentError("Student with id %d not found", studentID)
	}
	s.added = &models.Grade{ID: 1, StudentID: studentID, CourseID: courseID, TeacherID: teacherID, Value: value}
	if date != nil {
		s.added.GradeDate = *date
	}
	return s.added, nil
}

func (s *stubGradeBook) GetGroupAverageForCourse(context.Context, int64, int64) (float64, error) {
	return 95.5, nil
}

type stubReports struct {
	services.ReportService
}

func (stubReports) StudentReport(_ context.Context, w io.Writer, id int64) error {
	_, err := io.WriteString(w, "=== Student report ===\n")
	return err
}

func newTestRouter(gb *stubGradeBook) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	reports := stubReports{}
	SetupRouter(router, Controllers{
		Groups:   controllers.NewGroupController(gb),
		Teachers: controllers.NewTeacherController(gb),
		Courses:  controllers.NewCourseController(gb),
		Students: controllers.NewStudentController(gb),
		Grades:   controllers.NewGradeController(gb),
		Reports:  controllers.NewReportController(gb, reports),
	})
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) dto.APIResponse {
	t.Helper()
	resp := dto.APIResponse{Data: data}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateGroupIsIdempotent(t *testing.T) {
	gb := &stubGradeBook{groups: map[int64]*models.Group{}}
	router := newTestRouter(gb)

	w := do(router, http.MethodPost, "/api/v1/groups", `{"name":"IP-11","year":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	var first models.Group
	decode(t, w, &first)

	w = do(router, http.MethodPost, "/api/v1/groups", `{"name":"IP-11","year":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	var second models.Group
	decode(t, w, &second)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, *second.Year)
}

func TestCreateGroupValidation(t *testing.T) {
	router := newTestRouter(&stubGradeBook{groups: map[int64]*models.Group{}})

	w := do(router, http.MethodPost, "/api/v1/groups", `{"year":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "Name", body.Error.Field)
}

func TestGetGroupNotFoundAndStoreFailure(t *testing.T) {
	gb := &stubGradeBook{groups: map[int64]*models.Group{}}
	router := newTestRouter(gb)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/v1/groups/7", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/v1/groups/x", "").Code)

	gb.storeErr = apperrors.NewDataAccessError(errors.New("connection refused"), "finding group by id %d", 7)
	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodGet, "/api/v1/groups/7", "").Code)
}

func TestDeleteGroup(t *testing.T) {
	gb := &stubGradeBook{groups: map[int64]*models.Group{3: {ID: 3, Name: "IP-13"}}}
	router := newTestRouter(gb)

	assert.Equal(t, http.StatusOK, do(router, http.MethodDelete, "/api/v1/groups/3", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/api/v1/groups/3", "").Code)
}

func TestAddGrade(t *testing.T) {
	gb := &stubGradeBook{}
	router := newTestRouter(gb)

	w := do(router, http.MethodPost, "/api/v1/grades", `{"studentId":1,"courseId":2,"value":95.5,"gradeDate":"2024-10-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, gb.added)
	assert.Equal(t, 95.5, gb.added.Value)
	assert.Nil(t, gb.added.TeacherID)
	assert.Equal(t, "2024-10-01", gb.added.GradeDate.Format(helpers.DateLayout))

	w = do(router, http.MethodPost, "/api/v1/grades", `{"studentId":404,"courseId":2,"value":50}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorCodeInvalidArgument, body.Error.Code)
	assert.Equal(t, "Student with id 404 not found", body.Error.Message)

	// value is required, zero is a valid value
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/v1/grades", `{"studentId":1,"courseId":2}`).Code)
	assert.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/v1/grades", `{"studentId":1,"courseId":2,"value":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/v1/grades", `{"studentId":1,"courseId":2,"value":1,"gradeDate":"01.10.2024"}`).Code)

	// NUMERIC(5,2) holds at most 999.99
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/v1/grades", `{"studentId":1,"courseId":2,"value":1000}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/v1/grades", `{"studentId":1,"courseId":2,"value":-1000}`).Code)
}

func TestGroupCourseAverage(t *testing.T) {
	router := newTestRouter(&stubGradeBook{})

	w := do(router, http.MethodGet, "/api/v1/averages/groups/1/courses/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var avg dto.AverageResponse
	decode(t, w, &avg)
	assert.Equal(t, "group", avg.Subject)
	assert.Equal(t, 95.5, avg.Average)
	require.NotNil(t, avg.CourseID)
	assert.Equal(t, int64(2), *avg.CourseID)
}

func TestStudentReportIsPlainText(t *testing.T) {
	router := newTestRouter(&stubGradeBook{})

	w := do(router, http.MethodGet, "/api/v1/reports/students/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "=== Student report ===\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestExportStudents(t *testing.T) {
	gb := &stubGradeBook{students: []*models.Student{{ID: 1, FirstName: "Maksym", LastName: "Pashchenko"}}}
	router := newTestRouter(gb)

	w := do(router, http.MethodGet, "/api/v1/exports/students", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=students_")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("id;first_name;last_name")))

	w = do(router, http.MethodGet, "/api/v1/exports/students?format=xlsx", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/v1/exports/students?format=pdf", "").Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&stubGradeBook{})
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health", "").Code)
}

func TestCreateGroupRejectsMalformedName(t *testing.T) {
	router := newTestRouter(&stubGradeBook{groups: map[int64]*models.Group{}})

	w := do(router, http.MethodPost, "/api/v1/groups", `{"name":"IP_11"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name must contain letters, digits, spaces or hyphens only")
}
