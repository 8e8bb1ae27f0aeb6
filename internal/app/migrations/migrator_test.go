package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_init.sql"))
	assert.Equal(t, "002", Version("sql/002_add_index.sql"))
}

func TestPending_SortsAndFiltersSQLFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"002_more.sql": {Data: []byte("SELECT 2;")},
		"001_init.sql": {Data: []byte("SELECT 1;")},
		"README.md":    {Data: []byte("docs")},
	}

	files, err := Pending(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_more.sql"}, files)
}

func TestEmbeddedSchema(t *testing.T) {
	files, err := Pending(Files())
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_init.sql", files[0])
}
