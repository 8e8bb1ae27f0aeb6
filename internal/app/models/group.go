package models

import "fmt"

// Group is an academic group (cohort). Name is the natural key.
type Group struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"IP-11"`
	Year *int   `json:"year,omitempty" db:"year" example:"1"` // Class year of the cohort
}

// SameAs compares identity only
func (g *Group) SameAs(other *Group) bool {
	return g != nil && other != nil && g.ID != 0 && g.ID == other.ID
}

func (g Group) String() string {
	return fmt.Sprintf("Group{id=%d, name=%q, year=%s}", g.ID, g.Name, optInt(g.Year))
}
