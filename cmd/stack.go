package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/typetour/typetour/color"
	"github.com/typetour/typetour/icon"
	"github.com/typetour/typetour/key"
	"github.com/typetour/typetour/session"
	"github.com/typetour/typetour/stack"
	"github.com/typetour/typetour/style"
	"github.com/typetour/typetour/util"
)

func init() {
	rootCmd.AddCommand(stackCmd)

	stackCmd.PersistentFlags().StringP("name", "n", "", "Name of the persisted stack")
	lo.Must0(viper.BindPFlag(key.StackDefaultName, stackCmd.PersistentFlags().Lookup("name")))
	lo.Must0(stackCmd.RegisterFlagCompletionFunc("name", completionStackNames))
}

var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Push to and pop from persisted named stacks",
}

func stackName() string {
	return viper.GetString(key.StackDefaultName)
}

func completionStackNames(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	infos, err := session.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return lo.Map(infos, func(i session.Info, _ int) string {
		return i.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

// emptyErr decorates stack.ErrEmpty with the stack name.
func emptyErr(name string, err error) error {
	if errors.Is(err, stack.ErrEmpty) {
		return fmt.Errorf("%s %q: %w", icon.Get(icon.Empty), name, err)
	}
	return err
}

func init() {
	stackCmd.AddCommand(stackPushCmd)
	stackPushCmd.SetOut(os.Stdout)
}

var stackPushCmd = &cobra.Command{
	Use:   "push <value...>",
	Short: "Push values onto a stack, the last one ends up on top",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := stackName()
		length, err := session.Push(name, args...)
		handleErr(err)

		cmd.Printf(
			"%s pushed %s onto %s, now %s\n",
			icon.Get(icon.Stack),
			util.Quantify(len(args), "value", "values"),
			style.Fg(color.Purple)(name),
			util.Quantify(length, "item", "items"),
		)
	},
}

func init() {
	stackCmd.AddCommand(stackPopCmd)
	stackPopCmd.Flags().IntP("count", "c", 1, "Number of values to pop")
	stackPopCmd.SetOut(os.Stdout)
}

var stackPopCmd = &cobra.Command{
	Use:   "pop",
	Short: "Remove and print the top value of a stack",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name := stackName()
		count := lo.Must(cmd.Flags().GetInt("count"))
		if count < 1 {
			handleErr(fmt.Errorf("count must be positive, got %d", count))
		}

		for i := 0; i < count; i++ {
			value, err := session.Pop(name)
			handleErr(emptyErr(name, err))
			cmd.Println(value)
		}
	},
}

func init() {
	stackCmd.AddCommand(stackPeekCmd)
	stackPeekCmd.SetOut(os.Stdout)
}

var stackPeekCmd = &cobra.Command{
	Use:   "peek",
	Short: "Print the top value of a stack without removing it",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name := stackName()
		value, err := session.Peek(name)
		handleErr(emptyErr(name, err))
		cmd.Println(value)
	},
}

func init() {
	stackCmd.AddCommand(stackLenCmd)
	stackLenCmd.SetOut(os.Stdout)
}

var stackLenCmd = &cobra.Command{
	Use:   "len",
	Short: "Print the number of values in a stack",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		length, err := session.Len(stackName())
		handleErr(err)
		cmd.Println(length)
	},
}

func init() {
	stackCmd.AddCommand(stackLsCmd)
	stackLsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	stackLsCmd.SetOut(os.Stdout)
}

var stackLsCmd = &cobra.Command{
	Use:     "ls",
	Short:   "List persisted stacks",
	Aliases: []string{"list"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		infos, err := session.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(infos))
			return
		}

		if len(infos) == 0 {
			cmd.Printf("%s no stacks yet\n", icon.Get(icon.Empty))
			return
		}

		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"Name", "Size", "Updated"})

		for _, info := range infos {
			tbl.AppendRow(table.Row{info.Name, info.Size, humanize.Time(info.Updated)})
		}

		cmd.Println(tbl.Render())
	},
}

func init() {
	stackCmd.AddCommand(stackDropCmd)
	stackDropCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	stackDropCmd.SetOut(os.Stdout)
}

var stackDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete a persisted stack",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name := stackName()

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			length, err := session.Len(name)
			handleErr(err)

			confirm := survey.Confirm{
				Message: fmt.Sprintf("Drop %s holding %s?", name, util.Quantify(length, "item", "items")),
				Default: false,
			}

			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}
		}

		handleErr(session.Drop(name))
		cmd.Printf("%s dropped %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(name))
	},
}
