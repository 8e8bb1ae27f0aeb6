package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

func TestGroupRepository_FindByID(t *testing.T) {
	db := &fakeDB{rows: [][][]any{{{int64(1), "IP-11", 1}}}}
	repo := NewGroupRepository(db)

	group, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, int64(1), group.ID)
	assert.Equal(t, "IP-11", group.Name)
	require.NotNil(t, group.Year)
	assert.Equal(t, 1, *group.Year)

	assert.Equal(t, "SELECT id, name, year FROM groups WHERE id = $1", db.last().sql)
	assert.Equal(t, []any{int64(1)}, db.last().args)
}

func TestGroupRepository_FindByIDMissing(t *testing.T) {
	repo := NewGroupRepository(&fakeDB{})

	group, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, group)
}

func TestGroupRepository_NullYear(t *testing.T) {
	db := &fakeDB{rows: [][][]any{{{int64(3), "KN-21", nil}}}}
	repo := NewGroupRepository(db)

	group, err := repo.FindByName(context.Background(), "KN-21")
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Nil(t, group.Year)
	assert.Contains(t, db.last().sql, "WHERE name = $1")
	assert.Equal(t, []any{"KN-21"}, db.last().args)
}

func TestGroupRepository_FindAllOrdersByName(t *testing.T) {
	db := &fakeDB{rows: [][][]any{{
		{int64(2), "A-1", nil},
		{int64(1), "B-1", 2},
	}}}
	repo := NewGroupRepository(db)

	groups, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "A-1", groups[0].Name)
	assert.Equal(t, "SELECT id, name, year FROM groups ORDER BY name", db.last().sql)
}

func TestGroupRepository_InsertAssignsID(t *testing.T) {
	db := &fakeDB{rows: [][][]any{{{int64(7)}}}}
	repo := NewGroupRepository(db)

	in := &models.Group{ID: 99, Name: "IP-11", Year: helpers.Ptr(1)}
	out, err := repo.Insert(context.Background(), in)
	require.NoError(t, err)
	assert.Same(t, in, out)
	assert.Equal(t, int64(7), out.ID)

	sql := db.last().sql
	assert.Contains(t, sql, "INSERT INTO groups")
	assert.Contains(t, sql, "RETURNING id")
	assert.NotContains(t, sql, "(id")
	assert.Equal(t, []any{"IP-11", helpers.Ptr(1)}, db.last().args)
}

func TestGroupRepository_Update(t *testing.T) {
	db := &fakeDB{execTag: pgconn.NewCommandTag("UPDATE 1")}
	repo := NewGroupRepository(db)

	ok, err := repo.Update(context.Background(), &models.Group{ID: 4, Name: "IP-12"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "UPDATE groups SET name = $1, year = $2 WHERE id = $3", db.last().sql)
	assert.Equal(t, []any{"IP-12", (*int)(nil), int64(4)}, db.last().args)

	db.execTag = pgconn.NewCommandTag("UPDATE 0")
	ok, err = repo.Update(context.Background(), &models.Group{ID: 5, Name: "IP-13"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCrudRepository_UpdateRequiresID(t *testing.T) {
	db := &fakeDB{}
	repo := NewTeacherRepository(db)

	ok, err := repo.Update(context.Background(), &models.Teacher{FirstName: "Ivan", LastName: "Ivanenko"})
	assert.False(t, ok)
	assert.True(t, apperrors.IsInvalidArgument(err))
	assert.Empty(t, db.calls)
}

func TestCrudRepository_Delete(t *testing.T) {
	db := &fakeDB{execTag: pgconn.NewCommandTag("DELETE 1")}
	repo := NewCourseRepository(db)

	ok, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "DELETE FROM courses WHERE id = $1", db.last().sql)

	db.execTag = pgconn.NewCommandTag("DELETE 0")
	ok, err = repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCrudRepository_StoreFailure(t *testing.T) {
	cause := errors.New("connection refused")
	repo := NewCourseRepository(&fakeDB{err: cause})

	_, err := repo.Insert(context.Background(), &models.Course{Name: "Programming 1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDataAccess))
	assert.True(t, errors.Is(err, cause))

	var dae *apperrors.DataAccessError
	require.True(t, errors.As(err, &dae))
	assert.Contains(t, dae.Op, "inserting course")
	assert.False(t, apperrors.IsInvalidArgument(err))

	_, err = repo.FindAll(context.Background())
	assert.True(t, apperrors.IsDataAccess(err))

	_, err = repo.Delete(context.Background(), 1)
	assert.True(t, apperrors.IsDataAccess(err))
}

func TestTeacherRepository_FindByLastName(t *testing.T) {
	db := &fakeDB{rows: [][][]any{{
		{int64(1), "Anna", "Ivanenko", nil, "anna@example.com"},
		{int64(2), "Ivan", "Ivanenko", "CS", nil},
	}}}
	repo := NewTeacherRepository(db)

	teachers, err := repo.FindByLastName(context.Background(), "Ivanenko")
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Nil(t, teachers[0].Department)
	assert.Equal(t, "anna@example.com", *teachers[0].Email)
	assert.Equal(t, "CS", *teachers[1].Department)
	assert.Contains(t, db.last().sql, "WHERE last_name = $1 ORDER BY first_name")
}

func TestCourseRepository_SelectorsEmpty(t *testing.T) {
	db := &fakeDB{rows: [][][]any{{}}}
	repo := NewCourseRepository(db)

	courses, err := repo.FindByTeacherID(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
	assert.Contains(t, db.last().sql, "WHERE teacher_id = $1 ORDER BY name")
}

func TestStudentRepository_InsertReadsCreatedAt(t *testing.T) {
	created := time.Date(2024, 9, 1, 10, 30, 0, 0, time.UTC)
	db := &fakeDB{rows: [][][]any{{{int64(5), created}}}}
	repo := NewStudentRepository(db)

	s := &models.Student{FirstName: "Maksym", LastName: "Pashchenko", GroupID: helpers.Ptr(int64(1)), EnrollmentYear: helpers.Ptr(2024)}
	_, err := repo.Insert(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.ID)
	assert.Equal(t, created, s.CreatedAt)
	assert.Contains(t, db.last().sql, "RETURNING id, created_at")
}

func TestStudentRepository_FindByCourseIDIsDistinctJoin(t *testing.T) {
	created := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{rows: [][][]any{{
		{int64(5), "Maksym", "Pashchenko", nil, int64(1), 2024, created},
	}}}
	repo := NewStudentRepository(db)

	students, err := repo.FindByCourseID(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, int64(1), *students[0].GroupID)

	sql := db.last().sql
	assert.Contains(t, sql, "SELECT DISTINCT s.id, s.first_name")
	assert.Contains(t, sql, "JOIN grades g ON g.student_id = s.id")
	assert.Contains(t, sql, "WHERE g.course_id = $1")
	assert.Contains(t, sql, "ORDER BY s.last_name, s.first_name")
	assert.Equal(t, []any{int64(2)}, db.last().args)
}

func TestGradeRepository_InsertDefaultsDate(t *testing.T) {
	today := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{rows: [][][]any{{{int64(11), today}}}}
	repo := NewGradeRepository(db)

	g := &models.Grade{StudentID: 1, CourseID: 2, Value: 95.5}
	_, err := repo.Insert(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, int64(11), g.ID)
	assert.Equal(t, today, g.GradeDate)

	sql := db.last().sql
	assert.Contains(t, sql, "CURRENT_DATE")
	assert.Contains(t, sql, "RETURNING id, grade_date")
	assert.Equal(t, []any{int64(1), int64(2), (*int64)(nil), 95.5}, db.last().args)
}

func TestGradeRepository_SelectorsOrderByDate(t *testing.T) {
	db := &fakeDB{rows: [][][]any{{}, {}}}
	repo := NewGradeRepository(db)

	_, err := repo.FindByStudentID(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, db.last().sql, "WHERE student_id = $1 ORDER BY grade_date DESC, id")

	_, err = repo.FindByStudentAndCourse(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Contains(t, db.last().sql, "course_id = $1 AND student_id = $2")
	assert.Equal(t, []any{int64(2), int64(1)}, db.last().args)
}

// tableShape checks that every column list matches its scan destinations
func tableShape[T any](t *testing.T, table tableSpec[T]) {
	t.Helper()
	entity := new(T)
	assert.Len(t, table.scan(entity), len(table.selectColumns()), "select list of %s", table.name)
	assert.Len(t, table.values(entity), len(table.columns), "insert columns of %s", table.name)
	assert.Len(t, table.returned(entity), len(table.returningColumns()), "returning list of %s", table.name)
}

func TestTableSpecs_ColumnsMatchDestinations(t *testing.T) {
	tableShape(t, groupTable)
	tableShape(t, teacherTable)
	tableShape(t, courseTable)
	tableShape(t, studentTable)
	tableShape(t, gradeTable)
}

func TestGradeRepository_InsertReturnsIDAndDate(t *testing.T) {
	date := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	teacherID := int64(3)
	db := &fakeDB{rows: [][][]any{{{int64(12), date}}}}
	repo := NewGradeRepository(db)

	g := &models.Grade{StudentID: 1, CourseID: 2, TeacherID: &teacherID, Value: 95.5, GradeDate: date}
	_, err := repo.Insert(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, int64(12), g.ID)
	assert.Equal(t, date, g.GradeDate)

	sql := db.last().sql
	assert.Equal(t, "INSERT INTO grades (student_id,course_id,teacher_id,value,grade_date) VALUES ($1,$2,$3,$4,$5) RETURNING id, grade_date", sql)
	assert.Equal(t, []any{int64(1), int64(2), &teacherID, 95.5, date}, db.last().args)
}

func TestGradeRepository_InsertFailsWhenStoreReturnsOnlyID(t *testing.T) {
	// a one column row for a two column RETURNING list must not be accepted
	db := &fakeDB{rows: [][][]any{{{int64(12)}}}}
	repo := NewGradeRepository(db)

	_, err := repo.Insert(context.Background(), &models.Grade{StudentID: 1, CourseID: 2, Value: 70})
	require.Error(t, err)
	assert.True(t, apperrors.IsDataAccess(err))
}
