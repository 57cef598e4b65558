package tour

import (
	"errors"
	"io"

	"github.com/typetour/typetour/stack"
)

// ValueContainer is a type factory: each instantiation holds a value of its type argument.
type ValueContainer[V any] struct {
	Value V
}

// StringContainer is one concrete type produced by ValueContainer.
type StringContainer = ValueContainer[string]

// SimpleStack is the generic LIFO container under a catalog name.
type SimpleStack[T any] = stack.Stack[T]

// Identity returns its argument unchanged, with the argument's type.
func Identity[T any](arg T) T {
	return arg
}

var valueContainerExample = &Example{
	Name:    "value-container",
	Title:   "Generic types",
	Topic:   TopicGenerics,
	Summary: "A generic type has type parameters and produces a new type for every type argument. StringContainer is ValueContainer instantiated with string.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		sc := StringContainer{Value: "hello"}
		ic := ValueContainer[int]{Value: 7}
		n.say("StringContainer{Value: %q} has type %T", sc.Value, sc)
		n.say("ValueContainer[int]{Value: %d} has type %T", ic.Value, ic)
		return n.err
	},
}

var simpleStackExample = &Example{
	Name:    "simple-stack",
	Title:   "A generic stack",
	Topic:   TopicGenerics,
	Summary: "A stack parameterized by its element type only accepts that type. Popping an empty stack is an error, not a zero value, because the zero value might have been pushed on purpose.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		var s SimpleStack[string]
		for _, v := range []string{"a", "b", "c"} {
			s.Push(v)
			n.say("push %q  len=%d", v, s.Len())
		}

		for {
			v, err := s.Pop()
			if errors.Is(err, stack.ErrEmpty) {
				n.say("pop      error: %v", err)
				break
			}
			n.say("pop  %q  len=%d", v, s.Len())
		}

		n.say("s.Push(1) would not compile: int is not string")
		return n.err
	},
}

var identityExample = &Example{
	Name:    "identity",
	Title:   "Generic functions",
	Topic:   TopicGenerics,
	Summary: "Type parameters also apply to functions. The type argument is usually inferred from the call, and the result has the same type as the argument.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		n.say("Identity(42)       = %v (%T)", Identity(42), Identity(42))
		n.say("Identity(\"tour\")   = %v (%T)", Identity("tour"), Identity("tour"))
		n.say("Identity[float64](1) = %v (%T)", Identity[float64](1), Identity[float64](1))
		return n.err
	},
}
