package models

import "fmt"

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID         int64   `json:"id" db:"id" example:"1"`
	FirstName  string  `json:"firstName" db:"first_name" example:"Ivan"`
	LastName   string  `json:"lastName" db:"last_name" example:"Ivanenko"`
	Department *string `json:"department,omitempty" db:"department" example:"CS"`
	Email      *string `json:"email,omitempty" db:"email" example:"ivan@example.com"`
}

// SameAs compares identity only
func (t *Teacher) SameAs(other *Teacher) bool {
	return t != nil && other != nil && t.ID != 0 && t.ID == other.ID
}

// FullName returns "First Last"
func (t Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

func (t Teacher) String() string {
	return fmt.Sprintf("Teacher{id=%d, firstName=%q, lastName=%q, department=%s, email=%s}",
		t.ID, t.FirstName, t.LastName, optString(t.Department), optString(t.Email))
}
