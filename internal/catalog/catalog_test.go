package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/skillgap/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EmbeddedCatalogLoads(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultRoleName, c.DefaultRole())
	roles := c.Roles()
	require.NotEmpty(t, roles)
	assert.Equal(t, "Backend Developer", roles[0])
	assert.Contains(t, roles, "Frontend Developer")
}

func TestDefault_FrontendDeveloperCriticalSkills(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	role, ok := c.Get("Frontend Developer")
	require.True(t, ok)
	assert.Equal(t, []string{"React", "TypeScript", "JavaScript", "HTML/CSS", "REST APIs", "Git", "Problem Solving", "Testing"}, role.CriticalSkills)
	assert.NotEmpty(t, role.ImportantSkills)
}

func TestDefault_RolesHaveNoInternalDuplicates(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, name := range c.Roles() {
		role := c.Lookup(name)
		total := len(role.CriticalSkills) + len(role.ImportantSkills)
		assert.Len(t, role.RequiredSkills(), total, "role %s repeats a skill", name)
	}
}

func TestLookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"exact match", "Data Scientist", "Data Scientist"},
		{"case-insensitive match", "data scientist", "Data Scientist"},
		{"surrounding whitespace", "  DevOps Engineer ", "DevOps Engineer"},
		{"empty falls back to default", "", "Backend Developer"},
		{"unknown falls back to default", "Astronaut", "Backend Developer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Lookup(tt.input).RoleName)
		})
	}
}

func TestGet_NoFallback(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, ok := c.Get("Astronaut")
	assert.False(t, ok)
	_, ok = c.Get("")
	assert.False(t, ok)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"no roles", Document{}},
		{"empty role name", Document{Roles: []types.RoleRequirement{{RoleName: " "}}}},
		{"duplicate role", Document{DefaultRole: "A", Roles: []types.RoleRequirement{{RoleName: "A"}, {RoleName: "a"}}}},
		{"missing default", Document{DefaultRole: "B", Roles: []types.RoleRequirement{{RoleName: "A"}}}},
		{"implicit default missing", Document{Roles: []types.RoleRequirement{{RoleName: "A"}}}},
		{"blank critical skill", Document{DefaultRole: "A", Roles: []types.RoleRequirement{{RoleName: "A", CriticalSkills: []string{"Go", ""}}}}},
		{"whitespace important skill", Document{DefaultRole: "A", Roles: []types.RoleRequirement{{RoleName: "A", ImportantSkills: []string{"  "}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.doc)
			require.Error(t, err)
			var loadErr *LoadError
			assert.True(t, errors.As(err, &loadErr))
		})
	}
}

func TestNew_CopiesSkillSlices(t *testing.T) {
	critical := []string{"Go"}
	c, err := New(Document{DefaultRole: "A", Roles: []types.RoleRequirement{{RoleName: "A", CriticalSkills: critical}}})
	require.NoError(t, err)

	critical[0] = "Rust"
	assert.Equal(t, []string{"Go"}, c.Lookup("A").CriticalSkills)
}

func TestNew_TrimsSkillNames(t *testing.T) {
	c, err := New(Document{DefaultRole: "A", Roles: []types.RoleRequirement{{RoleName: "A", CriticalSkills: []string{" Go "}, ImportantSkills: []string{"SQL\t"}}}})
	require.NoError(t, err)
	role := c.Lookup("A")
	assert.Equal(t, []string{"Go"}, role.CriticalSkills)
	assert.Equal(t, []string{"SQL"}, role.ImportantSkills)
}

func TestLoad_RejectsBlankSkillName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	content := `{"defaultRole":"Tester","roles":[{"roleName":"Tester","criticalSkills":["Go",""]}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), `role "Tester": criticalSkills[1] is blank`)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.json")
	content := `{"defaultRole":"Tester","roles":[{"roleName":"Tester","criticalSkills":["Testing"],"importantSkills":["Go"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tester"}, c.Roles())
	assert.Equal(t, "Tester", c.Lookup("anything").RoleName)
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRoleName, c.DefaultRole())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Parse([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog JSON")
}
