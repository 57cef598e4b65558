package tour

import (
	"io"
	"strconv"

	"github.com/samber/lo"
)

// Age is a second name for int. Values move between the two without conversion.
type Age = int

// Unit is the single value of a type that carries no information.
type Unit = struct{}

// Undef is the only value of Unit.
var Undef Unit

// Tuple is a fixed-length pair. A list of ints has any length, a Tuple always has two.
type Tuple = lo.Tuple2[int, int]

// MakeString has a named function type: it takes an int and returns a string.
var MakeString func(num int) string = strconv.Itoa

// F1 declares no results; calling it can only be a statement.
func F1() {}

var aliasExample = &Example{
	Name:    "alias",
	Title:   "Type aliases",
	Topic:   TopicTypes,
	Summary: "An alias gives an existing type a second name. Age and int are the same type, so an Age can be passed wherever an int is expected without conversion.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		var age Age = 82
		var plain int = age

		n.say("var age Age = %d", age)
		n.say("var plain int = age  // no conversion needed, plain = %d", plain)
		n.say("Undef has type %T", Undef)
		return n.err
	},
}

var listsAndTuplesExample = &Example{
	Name:    "tuples",
	Title:   "Lists and tuples",
	Topic:   TopicTypes,
	Summary: "A slice holds any number of elements of one type. A tuple has a fixed number of positions, each with its own type; the position count is part of the type.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		arr1 := []int{}
		arr2 := make([]int, 0, 4)
		point := Tuple{A: 7, B: 5}

		n.say("arr1 := []int{}          // len %d", len(arr1))
		n.say("arr2 := make([]int, 0, 4) // len %d cap %d", len(arr2), cap(arr2))
		n.say("point := Tuple{A: 7, B: 5} // (%d, %d)", point.A, point.B)

		x, y := point.Unpack()
		n.say("x, y := point.Unpack()     // x=%d y=%d", x, y)
		return n.err
	},
}

var functionTypesExample = &Example{
	Name:    "function-types",
	Title:   "Function types",
	Topic:   TopicFunctions,
	Summary: "Functions are values with a type made of their parameter and result types. Any function with the matching signature can be stored in a variable of that type.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		n.say("var MakeString func(num int) string = strconv.Itoa")
		n.say("MakeString(42) = %q", MakeString(42))

		MakeString := func(num int) string { return "#" + strconv.Itoa(num) }
		n.say("a literal with the same signature also fits: %q", MakeString(42))
		return n.err
	},
}

var voidExample = &Example{
	Name:    "void",
	Title:   "Functions without results",
	Topic:   TopicFunctions,
	Summary: "A function that declares no results cannot return a value, and its call cannot be used as an expression.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		F1()
		n.say("F1() was called as a statement")
		n.say("x := F1() would not compile: F1() (no value) used as value")
		return n.err
	},
}
