package luastack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/typetour/typetour/constant"
	"github.com/typetour/typetour/filesystem"
	"github.com/typetour/typetour/log"
	"github.com/typetour/typetour/where"
	lua "github.com/yuin/gopher-lua"
)

// NewState returns a Lua state with the helper libraries preloaded, the stack
// module opened and print redirected to out.
func NewState(out io.Writer) *lua.LState {
	L := lua.NewState()
	libs.Preload(L)
	Open(L)
	L.SetGlobal("print", L.NewFunction(printTo(out)))
	return L
}

func printTo(out io.Writer) lua.LGFunction {
	return func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		if _, err := fmt.Fprintln(out, strings.Join(parts, "\t")); err != nil {
			L.RaiseError("print: %s", err)
		}
		return 0
	}
}

// Resolve finds a script by path. A bare name that does not exist as given is
// looked up in the scripts directory, with the .lua extension added if missing.
func Resolve(path string) (string, error) {
	fs := filesystem.API()
	if exists, err := fs.Exists(path); err != nil {
		return "", err
	} else if exists {
		return path, nil
	}

	if filepath.Base(path) == path {
		name := path
		if filepath.Ext(name) != constant.LuaScriptExt {
			name += constant.LuaScriptExt
		}

		candidate := filepath.Join(where.Scripts(), name)
		if exists, err := fs.Exists(candidate); err == nil && exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("script not found: %s", path)
}

// Run executes the script at path, printing to out. Cancelling ctx stops the script.
func Run(ctx context.Context, path string, out io.Writer) error {
	resolved, err := Resolve(path)
	if err != nil {
		return err
	}

	data, err := filesystem.ReadOnly().ReadFile(resolved)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	return run(ctx, data, filepath.Base(resolved), out)
}

// RunString executes src as a chunk named "inline".
func RunString(ctx context.Context, src string, out io.Writer) error {
	return run(ctx, []byte(src), "inline", out)
}

func run(ctx context.Context, src []byte, name string, out io.Writer) error {
	L := NewState(out)
	defer L.Close()
	L.SetContext(ctx)

	log.WithField("script", name).Debug("running")

	fn, err := L.Load(bytes.NewReader(src), name)
	if err != nil {
		return fmt.Errorf("compile %s: %w", name, err)
	}

	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}
