package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/gradebook/internal/app/controllers"
	"github.com/yigit/gradebook/internal/pkg/logger"
	"github.com/yigit/gradebook/internal/pkg/validation"
)

// Controllers groups the HTTP handlers the router wires
type Controllers struct {
	Groups   *controllers.GroupController
	Teachers *controllers.TeacherController
	Courses  *controllers.CourseController
	Students *controllers.StudentController
	Grades   *controllers.GradeController
	Reports  *controllers.ReportController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.Register(v); err != nil {
			logger.Error().Err(err).Msg("Failed to register validation rules")
		}
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	groups := v1.Group("/groups")
	{
		groups.POST("", c.Groups.CreateGroup)
		groups.GET("", c.Groups.GetGroups)
		groups.GET("/:id", c.Groups.GetGroup)
		groups.GET("/:id/students", c.Groups.GetGroupStudents)
		groups.PUT("/:id", c.Groups.UpdateGroup)
		groups.DELETE("/:id", c.Groups.DeleteGroup)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.POST("", c.Teachers.CreateTeacher)
		teachers.GET("", c.Teachers.GetTeachers)
		teachers.GET("/:id", c.Teachers.GetTeacher)
		teachers.GET("/:id/courses", c.Teachers.GetTeacherCourses)
		teachers.GET("/:id/grades", c.Teachers.GetTeacherGrades)
		teachers.PUT("/:id", c.Teachers.UpdateTeacher)
		teachers.DELETE("/:id", c.Teachers.DeleteTeacher)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", c.Courses.CreateCourse)
		courses.GET("", c.Courses.GetCourses)
		courses.GET("/:id", c.Courses.GetCourse)
		courses.GET("/:id/students", c.Courses.GetCourseStudents)
		courses.GET("/:id/grades", c.Courses.GetCourseGrades)
		courses.PUT("/:id", c.Courses.UpdateCourse)
		courses.DELETE("/:id", c.Courses.DeleteCourse)
	}

	students := v1.Group("/students")
	{
		students.POST("", c.Students.CreateStudent)
		students.GET("", c.Students.GetStudents)
		students.GET("/:id", c.Students.GetStudent)
		students.GET("/:id/grades", c.Students.GetStudentGrades)
		students.PUT("/:id", c.Students.UpdateStudent)
		students.DELETE("/:id", c.Students.DeleteStudent)
	}

	grades := v1.Group("/grades")
	{
		grades.POST("", c.Grades.AddGrade)
		grades.GET("", c.Grades.GetGrades)
		grades.GET("/:id", c.Grades.GetGrade)
		grades.PUT("/:id", c.Grades.UpdateGrade)
		grades.DELETE("/:id", c.Grades.DeleteGrade)
	}

	averages := v1.Group("/averages")
	{
		averages.GET("/students/:id", c.Reports.StudentAverage)
		averages.GET("/groups/:id/courses/:courseId", c.Reports.GroupCourseAverage)
		averages.GET("/teachers/:id", c.Reports.TeacherAverage)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/students/:id", c.Reports.StudentReport)
		reports.GET("/groups/:id/courses/:courseId", c.Reports.GroupCourseReport)
		reports.GET("/teachers/:id", c.Reports.TeacherReport)
	}

	exports := v1.Group("/exports")
	{
		exports.GET("/students", c.Reports.ExportStudents)
		exports.GET("/students/:id/grades", c.Reports.ExportStudentGrades)
		exports.GET("/groups/:id/courses/:courseId/grades", c.Reports.ExportGroupCourseGrades)
		exports.GET("/teachers/:id/grades", c.Reports.ExportTeacherGrades)
	}
}
