package dto

import (
	"time"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

// GroupRequest represents a group create or update request
type GroupRequest struct {
	Name string `json:"name" binding:"required,groupname" example:"IP-11"`
	Year *int   `json:"year" binding:"omitempty,min=1,max=12" example:"1"`
}

// ToModel builds the group entity
func (r GroupRequest) ToModel(id int64) *models.Group {
	return &models.Group{ID: id, Name: r.Name, Year: r.Year}
}

// TeacherRequest represents a teacher create or update request
type TeacherRequest struct {
	FirstName  string  `json:"firstName" binding:"required,personname" example:"Ivan"`
	LastName   string  `json:"lastName" binding:"required,personname" example:"Ivanenko"`
	Department *string `json:"department" binding:"omitempty,max=100" example:"CS"`
	Email      *string `json:"email" binding:"omitempty,email" example:"ivan@example.com"`
}

// ToModel builds the teacher entity
func (r TeacherRequest) ToModel(id int64) *models.Teacher {
	return &models.Teacher{ID: id, FirstName: r.FirstName, LastName: r.LastName, Department: r.Department, Email: r.Email}
}

// CourseRequest represents a course create or update request
type CourseRequest struct {
	Name      string `json:"name" binding:"required,max=100" example:"Programming 1"`
	Semester  *int   `json:"semester" binding:"omitempty,min=1,max=12" example:"1"`
	Year      *int   `json:"year" binding:"omitempty,min=1900,max=2100" example:"2024"`
	TeacherID *int64 `json:"teacherId" binding:"omitempty,min=1" example:"1"`
	Credits   *int   `json:"credits" binding:"omitempty,min=0" example:"5"`
}

// ToModel builds the course entity
func (r CourseRequest) ToModel(id int64) *models.Course {
	return &models.Course{ID: id, Name: r.Name, Semester: r.Semester, Year: r.Year, TeacherID: r.TeacherID, Credits: r.Credits}
}

// StudentRequest represents a student create or update request
type StudentRequest struct {
	FirstName      string  `json:"firstName" binding:"required,personname" example:"Maksym"`
	LastName       string  `json:"lastName" binding:"required,personname" example:"Pashchenko"`
	Email          *string `json:"email" binding:"omitempty,email" example:"maks@example.com"`
	GroupID        *int64  `json:"groupId" binding:"omitempty,min=1" example:"1"`
	EnrollmentYear *int    `json:"enrollmentYear" binding:"omitempty,min=1900,max=2100" example:"2024"`
}

// ToModel builds the student entity. CreatedAt stays with the store.
func (r StudentRequest) ToModel(id int64) *models.Student {
	return &models.Student{ID: id, FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, GroupID: r.GroupID, EnrollmentYear: r.EnrollmentYear}
}

// GradeRequest represents adding a grade. An empty date means today.
type GradeRequest struct {
	StudentID int64    `json:"studentId" binding:"required,min=1" example:"1"`
	CourseID  int64    `json:"courseId" binding:"required,min=1" example:"1"`
	TeacherID *int64   `json:"teacherId" binding:"omitempty,min=1" example:"1"`
	Value     *float64 `json:"value" binding:"required,min=-999.99,max=999.99" example:"95.5"`
	GradeDate string   `json:"gradeDate" binding:"omitempty,datetime=2006-01-02" example:"2024-10-01"`
}

// Date returns the parsed grade date, nil when omitted
func (r GradeRequest) Date() *time.Time {
	d, err := helpers.ParseDate(r.GradeDate)
	if err != nil {
		return nil
	}
	return d
}

// UpdateGradeRequest replaces every mutable grade field. The date is
// required here because there is no "today" on update.
type UpdateGradeRequest struct {
	StudentID int64    `json:"studentId" binding:"required,min=1"`
	CourseID  int64    `json:"courseId" binding:"required,min=1"`
	TeacherID *int64   `json:"teacherId" binding:"omitempty,min=1"`
	Value     *float64 `json:"value" binding:"required,min=-999.99,max=999.99"`
	GradeDate string   `json:"gradeDate" binding:"required,datetime=2006-01-02"`
}

// ToModel builds the grade entity
func (r UpdateGradeRequest) ToModel(id int64) *models.Grade {
	g := &models.Grade{ID: id, StudentID: r.StudentID, CourseID: r.CourseID, TeacherID: r.TeacherID, Value: helpers.Deref(r.Value)}
	if d, err := helpers.ParseDate(r.GradeDate); err == nil && d != nil {
		g.GradeDate = *d
	}
	return g
}
