package tour

import (
	"fmt"
	"io"

	"github.com/samber/mo"
)

// Point is anything with X and Y coordinates. Types satisfy it by having the
// methods; they never mention Point.
type Point interface {
	X() int
	Y() int
}

// PointToString renders any Point as "(x, y)".
func PointToString(pt Point) string {
	return fmt.Sprintf("(%d, %d)", pt.X(), pt.Y())
}

// Pixel satisfies Point without declaring it.
type Pixel struct {
	x, y int
}

// NewPixel returns the pixel at (x, y).
func NewPixel(x, y int) Pixel {
	return Pixel{x: x, y: y}
}

func (p Pixel) X() int { return p.x }
func (p Pixel) Y() int { return p.y }

// Cell is an unrelated type that also satisfies Point.
type Cell struct {
	Row, Col int
}

func (c Cell) X() int { return c.Col }
func (c Cell) Y() int { return c.Row }

// PointLiteral names an anonymous struct type. Any struct literal with the
// same fields is assignable to it.
type PointLiteral = struct {
	X, Y int
}

// PointToString2 takes its parameter as an inline struct type.
func PointToString2(pt struct{ X, Y int }) string {
	return fmt.Sprintf("(%d, %d)", pt.X, pt.Y)
}

// Person has a required name and an optional company.
type Person struct {
	Name    string            `json:"name"`
	Company mo.Option[string] `json:"company"`
}

func (p Person) String() string {
	if company, ok := p.Company.Get(); ok {
		return fmt.Sprintf("%s (%s)", p.Name, company)
	}
	return p.Name
}

// PointNew is a Point that also has a method member.
type PointNew interface {
	Point
	SimpleMethod(flag bool)
}

// Toggle is a Pixel that remembers the last flag it was given.
type Toggle struct {
	Pixel
	Last bool
}

func (t *Toggle) SimpleMethod(flag bool) {
	t.Last = flag
}

var structuralExample = &Example{
	Name:    "structural",
	Title:   "Structural typing",
	Topic:   TopicInterfaces,
	Summary: "Interface satisfaction is decided by shape. Any type with the required methods is a Point, whatever its name and whether or not it ever mentions Point.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		n.say("PointToString(NewPixel(1, 2))    = %s", PointToString(NewPixel(1, 2)))
		n.say("PointToString(Cell{Row: 3, Col: 4}) = %s", PointToString(Cell{Row: 3, Col: 4}))
		return n.err
	},
}

var literalTypesExample = &Example{
	Name:    "literal-types",
	Title:   "Object literal types",
	Topic:   TopicInterfaces,
	Summary: "An anonymous struct type can be written inline in a signature. A named alias of it and an untyped literal with the same fields are interchangeable with it.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		var named PointLiteral = PointLiteral{X: 5, Y: 6}
		n.say("PointToString2(named)               = %s", PointToString2(named))
		n.say("PointToString2(struct{X, Y int}{7, 8}) = %s", PointToString2(struct{ X, Y int }{7, 8}))
		return n.err
	},
}

var optionalFieldExample = &Example{
	Name:    "optional-field",
	Title:   "Optional properties",
	Topic:   TopicInterfaces,
	Summary: "A field that may be left out is modelled as an Option. Readers must handle the absent case before using the value.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		n.say("%s", Person{Name: "Ada", Company: mo.Some("Analytical Engines")})
		n.say("%s", Person{Name: "Grace", Company: mo.None[string]()})
		return n.err
	},
}

var methodMembersExample = &Example{
	Name:    "method-members",
	Title:   "Interfaces with methods",
	Topic:   TopicInterfaces,
	Summary: "Interfaces can require methods alongside other interfaces. A pointer receiver means only a pointer to the type satisfies the interface.",
	Run: func(w io.Writer) error {
		n := &narrator{w: w}

		var p PointNew = &Toggle{Pixel: NewPixel(1, 1)}
		p.SimpleMethod(true)
		n.say("p.SimpleMethod(true) -> Last = %t", p.(*Toggle).Last)
		n.say("PointToString(p)     = %s", PointToString(p))
		return n.err
	},
}
