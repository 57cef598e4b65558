// Package session persists named stacks of strings between command invocations.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/typetour/typetour/filesystem"
	"github.com/typetour/typetour/log"
	"github.com/typetour/typetour/stack"
	"github.com/typetour/typetour/where"
	"golang.org/x/exp/slices"
)

var (
	// ErrNotFound is returned when dropping a stack that was never created.
	ErrNotFound = errors.New("no such stack")

	// ErrInvalidName is returned for blank stack names.
	ErrInvalidName = errors.New("stack name must not be blank")
)

// Record is the persisted form of one named stack.
type Record struct {
	Stack   *stack.Stack[string] `json:"stack"`
	Updated time.Time            `json:"updated"`
}

// Info describes a stored stack without exposing its elements.
type Info struct {
	Name    string    `json:"name" yaml:"name"`
	Size    int       `json:"size" yaml:"size"`
	Updated time.Time `json:"updated" yaml:"updated"`
}

var (
	cacherOnce sync.Once
	cacher     *gache.Cache[map[string]*Record]
)

func store() *gache.Cache[map[string]*Record] {
	cacherOnce.Do(func() {
		cacher = gache.New[map[string]*Record](&gache.Options{
			Path:       where.Sessions(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

func load() (map[string]*Record, error) {
	records, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired || records == nil {
		return make(map[string]*Record), nil
	}
	return records, nil
}

func save(records map[string]*Record) error {
	return store().Set(records)
}

func normalize(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	return name, nil
}

// modify loads the stack called name (empty if unknown), applies fn, and
// saves the result when fn reports a change.
func modify(name string, fn func(s *stack.Stack[string]) (changed bool, err error)) error {
	name, err := normalize(name)
	if err != nil {
		return err
	}

	records, err := load()
	if err != nil {
		return err
	}

	record, ok := records[name]
	if !ok || record.Stack == nil {
		record = &Record{Stack: stack.New[string](0)}
	}

	changed, err := fn(record.Stack)
	if err != nil || !changed {
		return err
	}

	record.Updated = time.Now()
	records[name] = record
	return save(records)
}

// Push places values on the stack called name, creating it if needed, and
// returns the new length.
func Push(name string, values ...string) (length int, err error) {
	err = modify(name, func(s *stack.Stack[string]) (bool, error) {
		for _, v := range values {
			s.Push(v)
		}
		length = s.Len()
		return len(values) > 0, nil
	})

	log.WithFields(logrus.Fields{"stack": name, "pushed": len(values), "len": length}).Debug("push")
	return length, err
}

// Pop removes and returns the top of the stack called name.
// An empty or unknown stack yields stack.ErrEmpty.
func Pop(name string) (value string, err error) {
	err = modify(name, func(s *stack.Stack[string]) (bool, error) {
		v, err := s.Pop()
		if err != nil {
			return false, err
		}
		value = v
		return true, nil
	})

	log.WithFields(logrus.Fields{"stack": name, "error": err}).Debug("pop")
	return value, err
}

// Peek returns the top of the stack called name without removing it.
func Peek(name string) (value string, err error) {
	err = modify(name, func(s *stack.Stack[string]) (bool, error) {
		v, err := s.Peek()
		value = v
		return false, err
	})
	return value, err
}

// Len returns the number of values on the stack called name; unknown stacks have length 0.
func Len(name string) (length int, err error) {
	err = modify(name, func(s *stack.Stack[string]) (bool, error) {
		length = s.Len()
		return false, nil
	})
	return length, err
}

// List describes every stored stack, sorted by name.
func List() ([]Info, error) {
	records, err := load()
	if err != nil {
		return nil, err
	}

	infos := lo.MapToSlice(records, func(name string, r *Record) Info {
		size := 0
		if r.Stack != nil {
			size = r.Stack.Len()
		}
		return Info{Name: name, Size: size, Updated: r.Updated}
	})

	slices.SortFunc(infos, func(a, b Info) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos, nil
}

// Drop deletes the stack called name.
func Drop(name string) error {
	name, err := normalize(name)
	if err != nil {
		return err
	}

	records, err := load()
	if err != nil {
		return err
	}

	if _, ok := records[name]; !ok {
		return ErrNotFound
	}

	delete(records, name)
	log.WithField("stack", name).Info("dropped")
	return save(records)
}
