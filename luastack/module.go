// Package luastack exposes the generic stack to Lua scripts.
//
// Lua has no static types, so a Lua stack is created for an element kind and
// checks every pushed value against it at runtime. Popping an empty stack
// raises a Lua error instead of returning nil.
package luastack

import (
	"github.com/typetour/typetour/constant"
	"github.com/typetour/typetour/stack"
	lua "github.com/yuin/gopher-lua"
)

type luaStack struct {
	kind  Kind
	items *stack.Stack[lua.LValue]
}

// Open registers the stack module in L, both as a global and for require.
func Open(L *lua.LState) {
	mt := L.NewTypeMetatable(constant.LuaStackTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	L.SetField(mt, "__len", L.NewFunction(stackLen))
	L.SetField(mt, "__tostring", L.NewFunction(stackToString))

	L.PreloadModule(constant.LuaStackModule, loader)
	L.SetGlobal(constant.LuaStackModule, newModule(L))
}

func loader(L *lua.LState) int {
	L.Push(newModule(L))
	return 1
}

func newModule(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new": newStack,
	})
}

var methods = map[string]lua.LGFunction{
	"push": stackPush,
	"pop":  stackPop,
	"peek": stackPeek,
	"len":  stackLen,
	"kind": stackKind,
}

// stack.new([kind]) -> stack
func newStack(L *lua.LState) int {
	kind, err := ParseKind(L.OptString(1, string(KindAny)))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	ud := L.NewUserData()
	ud.Value = &luaStack{kind: kind, items: stack.New[lua.LValue](0)}
	L.SetMetatable(ud, L.GetTypeMetatable(constant.LuaStackTypeName))
	L.Push(ud)
	return 1
}

func check(L *lua.LState) *luaStack {
	ud := L.CheckUserData(1)
	if s, ok := ud.Value.(*luaStack); ok {
		return s
	}
	L.ArgError(1, "stack expected")
	return nil
}

// s:push(value) -> new length
func stackPush(L *lua.LState) int {
	s := check(L)
	v := L.Get(2)
	if !s.kind.Accepts(v) {
		L.ArgError(2, "stack of "+string(s.kind)+" cannot hold "+v.Type().String())
		return 0
	}

	s.items.Push(v)
	L.Push(lua.LNumber(s.items.Len()))
	return 1
}

// s:pop() -> value, raises on empty
func stackPop(L *lua.LState) int {
	s := check(L)
	v, err := s.items.Pop()
	if err != nil {
		L.RaiseError("pop: %s", err)
		return 0
	}
	L.Push(v)
	return 1
}

// s:peek() -> value, raises on empty
func stackPeek(L *lua.LState) int {
	s := check(L)
	v, err := s.items.Peek()
	if err != nil {
		L.RaiseError("peek: %s", err)
		return 0
	}
	L.Push(v)
	return 1
}

func stackLen(L *lua.LState) int {
	s := check(L)
	L.Push(lua.LNumber(s.items.Len()))
	return 1
}

func stackKind(L *lua.LState) int {
	s := check(L)
	L.Push(lua.LString(s.kind))
	return 1
}

func stackToString(L *lua.LState) int {
	s := check(L)
	L.Push(lua.LString("stack<" + string(s.kind) + ">"))
	return 1
}
