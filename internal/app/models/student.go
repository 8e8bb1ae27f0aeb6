package models

import (
	"fmt"
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	FirstName      string    `json:"firstName" db:"first_name" example:"Maksym"`
	LastName       string    `json:"lastName" db:"last_name" example:"Pashchenko"`
	Email          *string   `json:"email,omitempty" db:"email"`
	GroupID        *int64    `json:"groupId,omitempty" db:"group_id" example:"1"`
	EnrollmentYear *int      `json:"enrollmentYear,omitempty" db:"enrollment_year" example:"2024"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"` // Set by the store on insert
}

// SameAs compares identity only
func (s *Student) SameAs(other *Student) bool {
	return s != nil && other != nil && s.ID != 0 && s.ID == other.ID
}

// FullName returns "First Last"
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (s Student) String() string {
	return fmt.Sprintf("Student{id=%d, firstName=%q, lastName=%q, email=%s, groupId=%s, enrollmentYear=%s}",
		s.ID, s.FirstName, s.LastName, optString(s.Email), optID(s.GroupID), optInt(s.EnrollmentYear))
}
