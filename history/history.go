// Package history remembers which tour examples were run and how often.
package history

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/typetour/typetour/filesystem"
	"github.com/typetour/typetour/where"
	"golang.org/x/exp/slices"
)

// Entry is the run record of one example.
type Entry struct {
	Name    string    `json:"name"`
	Runs    int       `json:"runs"`
	LastRun time.Time `json:"last_run"`
}

var (
	cacherOnce sync.Once
	cacher     *gache.Cache[map[string]*Entry]
)

func store() *gache.Cache[map[string]*Entry] {
	cacherOnce.Do(func() {
		cacher = gache.New[map[string]*Entry](&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

// Get returns every recorded entry keyed by example name.
func Get() (map[string]*Entry, error) {
	cached, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Save records a run of the named example.
func Save(name string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	entry, ok := saved[name]
	if !ok {
		entry = &Entry{Name: name}
		saved[name] = entry
	}

	entry.Runs++
	entry.LastRun = time.Now()

	return store().Set(saved)
}

// Recent returns entries, most recently run first.
func Recent() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.LastRun.Compare(a.LastRun)
	})
	return entries, nil
}

// Last returns the name of the most recently run example, if any.
func Last() mo.Option[string] {
	entries, err := Recent()
	if err != nil || len(entries) == 0 {
		return mo.None[string]()
	}
	return mo.Some(entries[0].Name)
}

// Remove forgets the named example.
func Remove(name string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, name)
	return store().Set(saved)
}
