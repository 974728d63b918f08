// Package checkpoint persists the names of the source files that have already been merged into
// the target sheet, as a sorted JSON array of strings.
package checkpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

type Set map[string]struct{}

// Load returns the set of processed file names. A missing checkpoint file is created empty.
func Load(file string) (Set, error) {
	bytes, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		set := Set{}
		if err := Save(file, set); err != nil {
			return nil, err
		}

		return set, nil
	} else if err != nil {
		return nil, err
	}

	names := []string{}
	if err := json.Unmarshal(bytes, &names); err != nil {
		return nil, fmt.Errorf("invalid checkpoint file %v (%w)", file, err)
	}

	set := Set{}
	for _, name := range names {
		set.Add(name)
	}

	return set, nil
}

// Save overwrites the checkpoint file with the sorted names. The write is not atomic.
func Save(file string, set Set) error {
	bytes, err := json.Marshal(set.Sorted())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(file); dir != "" {
		if err := os.MkdirAll(dir, 0770); err != nil {
			return err
		}
	}

	return os.WriteFile(file, bytes, 0660)
}

func (s Set) Has(name string) bool {
	_, ok := s[name]

	return ok
}

func (s Set) Add(name string) {
	s[name] = struct{}{}
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

func (s Set) Clone() Set {
	set := make(Set, len(s))
	for k := range s {
		set[k] = struct{}{}
	}

	return set
}
