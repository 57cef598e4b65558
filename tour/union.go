package tour

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
)

// ErrIllegalValue is wrapped by every IllegalValueError.
var ErrIllegalValue = errors.New("illegal value")

// IllegalValueError reports a score outside the accepted range.
type IllegalValueError struct {
	Value any
}

func (e *IllegalValueError) Error() string {
	rendered, err := json.Marshal(e.Value)
	if err != nil {
		rendered = []byte(fmt.Sprint(e.Value))
	}
	return fmt.Sprintf("%s: %s", ErrIllegalValue, rendered)
}

func (e *IllegalValueError) Unwrap() error {
	return ErrIllegalValue
}

// Score is the union of the two shapes a rating can take: a run of stars or a number.
type Score interface {
	string | int
}

var stars = regexp.MustCompile(`^\*{1,5}$`)

// GetScore converts a rating to a number from 1 to 5. "*" to "*****" score
// their length and the integers 1 to 5 score themselves. Everything else is
// an IllegalValueError.
func GetScore[S Score](v S) (int, error) {
	switch value := any(v).(type) {
	case string:
		if stars.MatchString(value) {
			return len(value), nil
		}
	case int:
		if value >= 1 && value <= 5 {
			return value, nil
		}
	}
	return 0, &IllegalValueError{Value: v}
}

var unionExample = &Example{
	Name:    "union",
	Title:   "Union types",
	Topic:   TopicUnions,
	Summary: "A union type admits values of any of its member types. The function narrows the value to one member before using it, and rejects values that fit the type but not the contract.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		report := func(call string, score int, err error) {
			if err != nil {
				n.say("%-18s -> error: %v", call, err)
				return
			}
			n.say("%-18s -> %d", call, score)
		}

		score, err := GetScore("***")
		report(`GetScore("***")`, score, err)
		score, err = GetScore(4)
		report("GetScore(4)", score, err)
		score, err = GetScore("******")
		report(`GetScore("******")`, score, err)
		score, err = GetScore(0)
		report("GetScore(0)", score, err)

		n.say("GetScore(1.5) would not compile: float64 does not satisfy Score")
		return n.err
	},
}
