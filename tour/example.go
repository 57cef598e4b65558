// Package tour is a catalog of small, runnable demonstrations of type system features:
// aliases, tuples, function types, optional and default parameters, variadic
// parameters, unions, structural interfaces and generics.
//
// Every demonstration is ordinary exported Go API plus an Example that narrates
// a run of it.
package tour

import (
	"fmt"
	"io"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Topics group examples in listings.
const (
	TopicTypes      = "types"
	TopicFunctions  = "functions"
	TopicUnions     = "unions"
	TopicInterfaces = "interfaces"
	TopicGenerics   = "generics"
)

// Example is a single catalog entry.
type Example struct {
	// Name is the unique, command-line friendly identifier.
	Name string `json:"name" yaml:"name" jsonschema:"required"`
	// Title is the human readable heading.
	Title string `json:"title" yaml:"title" jsonschema:"required"`
	// Topic is one of the Topic* constants.
	Topic string `json:"topic" yaml:"topic" jsonschema:"enum=types,enum=functions,enum=unions,enum=interfaces,enum=generics"`
	// Summary explains the construct in a few sentences.
	Summary string `json:"summary" yaml:"summary"`

	Run func(w io.Writer) error `json:"-" yaml:"-"`
}

// String returns the example title.
func (e *Example) String() string {
	return e.Title
}

// Output runs the example and returns what it printed.
func (e *Example) Output() (string, error) {
	var b strings.Builder
	err := e.Run(&b)
	return b.String(), err
}

var catalog = []*Example{
	aliasExample,
	listsAndTuplesExample,
	functionTypesExample,
	voidExample,
	optionalParamExample,
	defaultParamsExample,
	restParamsExample,
	unionExample,
	optionalVsDefaultExample,
	structuralExample,
	literalTypesExample,
	optionalFieldExample,
	methodMembersExample,
	valueContainerExample,
	simpleStackExample,
	identityExample,
}

var byName = make(map[string]*Example, len(catalog))

func init() {
	for _, e := range catalog {
		if _, exists := byName[e.Name]; exists {
			panic("duplicate example name: " + e.Name)
		}
		byName[e.Name] = e
	}
}

// All returns every example in catalog order.
func All() []*Example {
	return slices.Clone(catalog)
}

// Names returns the identifiers of every example in catalog order.
func Names() []string {
	return lo.Map(catalog, func(e *Example, _ int) string {
		return e.Name
	})
}

// Topics returns the distinct topics in catalog order.
func Topics() []string {
	return lo.Uniq(lo.Map(catalog, func(e *Example, _ int) string {
		return e.Topic
	}))
}

// ByTopic returns the examples filed under topic.
func ByTopic(topic string) []*Example {
	return lo.Filter(catalog, func(e *Example, _ int) bool {
		return e.Topic == topic
	})
}

// Get looks an example up by its exact name.
func Get(name string) mo.Option[*Example] {
	e, ok := byName[name]
	if !ok {
		return mo.None[*Example]()
	}
	return mo.Some(e)
}

// Search returns the examples whose name or title fuzzily match query,
// closest names first. An empty query matches everything.
func Search(query string) []*Example {
	query = strings.TrimSpace(query)
	if query == "" {
		return All()
	}

	matches := lo.Filter(catalog, func(e *Example, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, e.Name) || fuzzy.MatchNormalizedFold(query, e.Title)
	})

	slices.SortStableFunc(matches, func(a, b *Example) int {
		return levenshtein.Distance(query, a.Name) - levenshtein.Distance(query, b.Name)
	})

	return matches
}

// Closest returns the example name with the smallest edit distance to name.
func Closest(name string) string {
	return lo.MinBy(Names(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

// Lookup is Get with an error suggesting the closest name.
func Lookup(name string) (*Example, error) {
	if e, ok := Get(name).Get(); ok {
		return e, nil
	}
	return nil, fmt.Errorf("unknown example %q, did you mean %q?", name, Closest(name))
}

// narrator writes example output line by line and keeps the first write error.
type narrator struct {
	w   io.Writer
	err error
}

func (n *narrator) say(format string, args ...any) {
	if n.err != nil {
		return
	}
	_, n.err = fmt.Fprintf(n.w, format+"\n", args...)
}
