package constant

// Lua bridge identifiers.
const (
	// LuaStackModule is the global table name the stack module is registered under.
	LuaStackModule = "stack"

	// LuaStackTypeName is the metatable name of stack userdata values.
	LuaStackTypeName = "typetour.stack"

	// LuaScriptExt is the file extension accepted by the script command.
	LuaScriptExt = ".lua"
)
