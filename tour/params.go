package tour

import (
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Stringify123 formats 123 with callback, or in decimal when no callback is given.
func Stringify123(callback mo.Option[func(num int) string]) string {
	format := callback.OrElse(strconv.Itoa)
	return format(123)
}

// PointOption overrides one coordinate of CreatePoint.
type PointOption func(*Tuple)

// WithX sets the x coordinate.
func WithX(x int) PointOption {
	return func(t *Tuple) { t.A = x }
}

// WithY sets the y coordinate.
func WithY(y int) PointOption {
	return func(t *Tuple) { t.B = y }
}

// CreatePoint returns (0, 0) unless options override a coordinate.
func CreatePoint(opts ...PointOption) Tuple {
	p := lo.T2(0, 0)
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// JoinNumbers joins any number of ints with dashes.
func JoinNumbers(nums ...int) string {
	return strings.Join(lo.Map(nums, func(n int, _ int) string {
		return strconv.Itoa(n)
	}), "-")
}

// FSample hands an optional parameter back untouched: absent stays absent.
func FSample(x mo.Option[int]) mo.Option[int] {
	return x
}

// F2Sample falls back to 456 when x is absent.
func F2Sample(x mo.Option[int]) int {
	return x.OrElse(456)
}

var optionalParamExample = &Example{
	Name:    "optional-param",
	Title:   "Optional parameters",
	Topic:   TopicFunctions,
	Summary: "An optional parameter may be left out by the caller. The function has to check for absence before it can use the value; an Option makes that check explicit.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		n.say("Stringify123(mo.None[func(int) string]()) = %q", Stringify123(mo.None[func(int) string]()))

		hex := func(num int) string { return "0x" + strconv.FormatInt(int64(num), 16) }
		n.say("Stringify123(mo.Some(hex))               = %q", Stringify123(mo.Some(hex)))
		return n.err
	},
}

var defaultParamsExample = &Example{
	Name:    "default-params",
	Title:   "Default parameter values",
	Topic:   TopicFunctions,
	Summary: "Default values make parameters optional. Functional options give each parameter a default and let the caller override any subset of them.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		show := func(call string, p Tuple) {
			n.say("%-36s = (%d, %d)", call, p.A, p.B)
		}

		show("CreatePoint()", CreatePoint())
		show("CreatePoint(WithX(3))", CreatePoint(WithX(3)))
		show("CreatePoint(WithY(4))", CreatePoint(WithY(4)))
		show("CreatePoint(WithX(3), WithY(4))", CreatePoint(WithX(3), WithY(4)))
		return n.err
	},
}

var restParamsExample = &Example{
	Name:    "rest-params",
	Title:   "Rest parameters",
	Topic:   TopicFunctions,
	Summary: "A final variadic parameter collects any number of trailing arguments into a slice. An existing slice can be spread into it.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		nums := []int{4, 5, 6}
		n.say("JoinNumbers()        = %q", JoinNumbers())
		n.say("JoinNumbers(1, 2, 3) = %q", JoinNumbers(1, 2, 3))
		n.say("JoinNumbers(nums...) = %q", JoinNumbers(nums...))
		return n.err
	},
}

var optionalVsDefaultExample = &Example{
	Name:    "optional-vs-default",
	Title:   "Optional versus default",
	Topic:   TopicFunctions,
	Summary: "An omitted optional parameter is simply absent. A parameter with a default is never absent inside the function: omission is replaced by the default.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		n.say("FSample(mo.Some(7)).MustGet() = %d", FSample(mo.Some(7)).MustGet())
		n.say("FSample(mo.None[int]()) present = %t", FSample(mo.None[int]()).IsPresent())
		n.say("F2Sample(mo.Some(123)) = %d", F2Sample(mo.Some(123)))
		n.say("F2Sample(mo.None[int]()) = %d", F2Sample(mo.None[int]()))
		return n.err
	},
}
