package luastack

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Kind is the element type a Lua stack was created for.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindTable   Kind = "table"
	KindAny     Kind = "any"
)

// Kinds lists every accepted element kind.
func Kinds() []Kind {
	return []Kind{KindString, KindNumber, KindBoolean, KindTable, KindAny}
}

// ParseKind validates a kind name given by a script.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}

	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return "", fmt.Errorf("unknown element kind %q, expected one of %s", name, strings.Join(names, ", "))
}

// Accepts reports whether v may be stored in a stack of this kind.
// nil is never accepted: it is how Lua spells absence.
func (k Kind) Accepts(v lua.LValue) bool {
	if v.Type() == lua.LTNil {
		return false
	}

	switch k {
	case KindString:
		return v.Type() == lua.LTString
	case KindNumber:
		return v.Type() == lua.LTNumber
	case KindBoolean:
		return v.Type() == lua.LTBool
	case KindTable:
		return v.Type() == lua.LTTable
	case KindAny:
		return true
	default:
		return false
	}
}
