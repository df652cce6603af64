// Package catalog provides the role requirement catalog and the skill market table.
//
// Both are built once at startup from embedded JSON (or an operator-supplied file)
// and are read-only afterwards, so a single instance can be shared across goroutines.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/skillgap/internal/types"
)

//go:embed data/roles.json
var embeddedRoles []byte

// DefaultRoleName is the fallback role used by the embedded catalog
const DefaultRoleName = "Backend Developer"

// Document is the on-disk shape of a role catalog
type Document struct {
	DefaultRole string                  `json:"defaultRole"`
	Roles       []types.RoleRequirement `json:"roles"`
}

// Catalog maps role names to their skill requirements
type Catalog struct {
	roles       []types.RoleRequirement
	byName      map[string]int
	byLowerName map[string]int
	defaultIdx  int
}

// New builds a Catalog from a parsed document.
// Role names must be non-empty and unique (case-insensitively), skill names must be non-empty,
// and the default role must exist.
func New(doc Document) (*Catalog, error) {
	if len(doc.Roles) == 0 {
		return nil, &LoadError{Message: "catalog has no roles"}
	}
	defaultRole := doc.DefaultRole
	if defaultRole == "" {
		defaultRole = DefaultRoleName
	}

	c := &Catalog{
		roles:       make([]types.RoleRequirement, 0, len(doc.Roles)),
		byName:      make(map[string]int, len(doc.Roles)),
		byLowerName: make(map[string]int, len(doc.Roles)),
		defaultIdx:  -1,
	}
	for i, role := range doc.Roles {
		name := strings.TrimSpace(role.RoleName)
		if name == "" {
			return nil, &LoadError{Message: fmt.Sprintf("role at index %d has no name", i)}
		}
		lower := strings.ToLower(name)
		if _, dup := c.byLowerName[lower]; dup {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate role %q", name)}
		}

		critical, err := cleanSkills(name, "criticalSkills", role.CriticalSkills)
		if err != nil {
			return nil, err
		}
		important, err := cleanSkills(name, "importantSkills", role.ImportantSkills)
		if err != nil {
			return nil, err
		}
		entry := types.RoleRequirement{
			RoleName:        name,
			CriticalSkills:  critical,
			ImportantSkills: important,
		}
		c.byName[name] = len(c.roles)
		c.byLowerName[lower] = len(c.roles)
		c.roles = append(c.roles, entry)
	}

	idx, ok := c.find(defaultRole)
	if !ok {
		return nil, &LoadError{Message: fmt.Sprintf("default role %q is not in the catalog", defaultRole)}
	}
	c.defaultIdx = idx
	return c, nil
}

// cleanSkills returns a trimmed copy of a role's skill list, so callers cannot mutate the
// catalog through the document. Blank names are rejected.
func cleanSkills(role, field string, names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for i, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, &LoadError{Message: fmt.Sprintf("role %q: %s[%d] is blank", role, field, i)}
		}
		out = append(out, n)
	}
	return out, nil
}

// Parse builds a Catalog from JSON bytes
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Message: "failed to parse catalog JSON", Cause: err}
	}
	return New(doc)
}

// Load reads a catalog from path. An empty path returns the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read catalog file %s", path), Cause: err}
	}
	return Parse(data)
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(embeddedRoles)
}

func (c *Catalog) find(roleName string) (int, bool) {
	name := strings.TrimSpace(roleName)
	if name == "" {
		return 0, false
	}
	if idx, ok := c.byName[name]; ok {
		return idx, true
	}
	idx, ok := c.byLowerName[strings.ToLower(name)]
	return idx, ok
}

// Lookup returns the requirements for roleName. Empty or unknown names resolve to
// the default role; this is a fallback policy, not an error.
func (c *Catalog) Lookup(roleName string) types.RoleRequirement {
	if idx, ok := c.find(roleName); ok {
		return c.roles[idx]
	}
	return c.roles[c.defaultIdx]
}

// Get returns the requirements for roleName without falling back to the default role
func (c *Catalog) Get(roleName string) (types.RoleRequirement, bool) {
	idx, ok := c.find(roleName)
	if !ok {
		return types.RoleRequirement{}, false
	}
	return c.roles[idx], true
}

// Roles returns role names in catalog order
func (c *Catalog) Roles() []string {
	names := make([]string, len(c.roles))
	for i, r := range c.roles {
		names[i] = r.RoleName
	}
	return names
}

// DefaultRole returns the name of the fallback role
func (c *Catalog) DefaultRole() string {
	return c.roles[c.defaultIdx].RoleName
}
