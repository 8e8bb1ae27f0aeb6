package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/gradebook/internal/app/models"
)

var groupTable = tableSpec[models.Group]{
	name:    "groups",
	entity:  "group",
	columns: []string{"name", "year"},
	orderBy: []string{"name"},
	id:      func(g *models.Group) int64 { return g.ID },
	values: func(g *models.Group) []interface{} {
		return []interface{}{g.Name, g.Year}
	},
	scan: func(g *models.Group) []interface{} {
		return []interface{}{&g.ID, &g.Name, &g.Year}
	},
	returned: func(g *models.Group) []interface{} {
		return []interface{}{&g.ID}
	},
}

// GroupRepository handles group database operations
type GroupRepository struct {
	*crudRepository[models.Group]
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db DBTX) *GroupRepository {
	return &GroupRepository{crudRepository: newCrudRepository(db, groupTable)}
}

// FindByName looks a group up by its natural key
func (r *GroupRepository) FindByName(ctx context.Context, name string) (*models.Group, error) {
	return r.one(ctx,
		r.selectAll().Where(squirrel.Eq{"name": name}),
		fmt.Sprintf("finding group by name %q", name))
}
