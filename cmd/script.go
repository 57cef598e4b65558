package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/typetour/typetour/constant"
	"github.com/typetour/typetour/filesystem"
	"github.com/typetour/typetour/key"
	"github.com/typetour/typetour/luastack"
	"github.com/typetour/typetour/where"
)

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.Flags().StringP("eval", "e", "", "Run this Lua code instead of a file")
	scriptCmd.SetOut(os.Stdout)
}

var scriptCmd = &cobra.Command{
	Use:   "script [file.lua]",
	Short: "Run a Lua script with the stack module loaded",
	Long: `Run a Lua script with the stack module loaded.

Stacks created with stack.new(kind) check the kind of every pushed value.
Kinds are string, number, boolean, table and any.
Popping an empty stack raises an error instead of returning nil.`,
	Example: `  typetour script -e 's = stack.new("number"); s:push(1); print(s:pop())'
  typetour script ./reverse.lua`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionScripts,
	Run: func(cmd *cobra.Command, args []string) {
		code := lo.Must(cmd.Flags().GetString("eval"))

		if (code == "") == (len(args) == 0) {
			handleErr(errors.New("give either a script file or --eval code"))
		}

		ctx := context.Background()
		if seconds := viper.GetInt(key.ScriptTimeoutSeconds); seconds > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
			defer cancel()
		}

		if code != "" {
			handleErr(luastack.RunString(ctx, code, cmd.OutOrStdout()))
			return
		}

		handleErr(luastack.Run(ctx, args[0], cmd.OutOrStdout()))
	},
}

func completionScripts(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	files, err := filesystem.API().ReadDir(where.Scripts())
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}

	names := lo.FilterMap(files, func(f os.FileInfo, _ int) (string, bool) {
		name := f.Name()
		return strings.TrimSuffix(name, constant.LuaScriptExt), !f.IsDir() && filepath.Ext(name) == constant.LuaScriptExt
	})

	return names, cobra.ShellCompDirectiveDefault
}
