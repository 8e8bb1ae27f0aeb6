package repositories

// Repositories holds all the repository instances
type Repositories struct {
	GroupRepository   *GroupRepository
	TeacherRepository *TeacherRepository
	CourseRepository  *CourseRepository
	StudentRepository *StudentRepository
	GradeRepository   *GradeRepository
}

// NewRepositories initializes all repositories over one pool
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		GroupRepository:   NewGroupRepository(db),
		TeacherRepository: NewTeacherRepository(db),
		CourseRepository:  NewCourseRepository(db),
		StudentRepository: NewStudentRepository(db),
		GradeRepository:   NewGradeRepository(db),
	}
}
