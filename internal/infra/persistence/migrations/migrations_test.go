package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)

	entries, err := fs.ReadDir(src, ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestEmbeddedMigrationsParse(t *testing.T) {
	driver, err := iofs.New(files, "sql")
	require.NoError(t, err)
	defer driver.Close()

	first, err := driver.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)
}

func TestInitialSchemaDeclaresUniqueConstraints(t *testing.T) {
	raw, err := fs.ReadFile(files, "sql/000001_init_schema.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	for _, constraint := range []string{
		"email         VARCHAR(255) NOT NULL UNIQUE",
		"business_profiles_user_id_key UNIQUE (user_id)",
		"business_profiles_registration_number_key UNIQUE (registration_number)",
		"approval_applications_application_number_key UNIQUE (application_number)",
	} {
		assert.Contains(t, schema, constraint)
	}
}
