// Package skills holds the user skill index and the skill name helpers used by the gap analyzer.
package skills

import (
	"github.com/jonathan/skillgap/internal/types"
)

// Index is an insertion-ordered map from skill name to UserSkill.
// Duplicate names overwrite the stored value but keep the first position.
type Index struct {
	order  []string
	byName map[string]types.UserSkill
}

// Build constructs an Index from the caller's skill list. A nil or empty list yields an empty index.
func Build(userSkills []types.UserSkill) *Index {
	idx := &Index{
		order:  make([]string, 0, len(userSkills)),
		byName: make(map[string]types.UserSkill, len(userSkills)),
	}
	for _, s := range userSkills {
		if _, exists := idx.byName[s.Name]; !exists {
			idx.order = append(idx.order, s.Name)
		}
		idx.byName[s.Name] = s
	}
	return idx
}

// Get returns the skill stored under name
func (idx *Index) Get(name string) (types.UserSkill, bool) {
	if idx == nil {
		return types.UserSkill{}, false
	}
	s, ok := idx.byName[name]
	return s, ok
}

// Len returns the number of distinct skill names
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.order)
}

// Skills returns the indexed skills in insertion order
func (idx *Index) Skills() []types.UserSkill {
	if idx == nil {
		return nil
	}
	out := make([]types.UserSkill, 0, len(idx.order))
	for _, name := range idx.order {
		out = append(out, idx.byName[name])
	}
	return out
}
