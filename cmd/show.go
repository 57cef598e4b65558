package cmd

import (
	"os"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/typetour/typetour/color"
	"github.com/typetour/typetour/key"
	"github.com/typetour/typetour/style"
	"github.com/typetour/typetour/tour"
	"github.com/typetour/typetour/util"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.SetOut(os.Stdout)
}

var showCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Describe an example and print what it does",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionExamples,
	Run: func(cmd *cobra.Command, args []string) {
		example, err := tour.Lookup(args[0])
		handleErr(err)

		output, err := example.Output()
		handleErr(err)

		width := util.WrapWidth(viper.GetInt(key.TourWrapWidth), 80)

		title := style.Title(example.Title)
		if viper.GetBool(key.TourShowTopic) {
			title += " " + style.Tag(color.Gray, "")(example.Topic)
		}

		cmd.Println(title)
		cmd.Println()
		cmd.Println(wordwrap.String(example.Summary, width))
		cmd.Println()
		cmd.Print(style.Faint(output))
	},
}
