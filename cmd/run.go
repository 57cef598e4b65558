package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/typetour/typetour/history"
	"github.com/typetour/typetour/icon"
	"github.com/typetour/typetour/log"
	"github.com/typetour/typetour/style"
	"github.com/typetour/typetour/tour"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("all", "a", false, "Run every example in catalog order")
	runCmd.SetOut(os.Stdout)
}

var runCmd = &cobra.Command{
	Use:               "run [name...]",
	Short:             "Run examples and print their output",
	ValidArgsFunction: completionExamples,
	Run: func(cmd *cobra.Command, args []string) {
		var examples []*tour.Example

		switch {
		case lo.Must(cmd.Flags().GetBool("all")):
			examples = tour.All()
		case len(args) == 0:
			example, err := selectExample()
			handleErr(err)
			examples = []*tour.Example{example}
		default:
			for _, name := range args {
				example, err := tour.Lookup(name)
				handleErr(err)
				examples = append(examples, example)
			}
		}

		for i, example := range examples {
			cmd.Printf("%s %s\n", icon.Get(icon.Example), style.Bold(example.Title))
			handleErr(example.Run(cmd.OutOrStdout()))

			if err := history.Save(example.Name); err != nil {
				log.Warn(err)
			}

			if i < len(examples)-1 {
				cmd.Println()
			}
		}
	},
}

func selectExample() (*tour.Example, error) {
	examples := tour.All()
	names := lo.Map(examples, func(e *tour.Example, _ int) string {
		return e.Name
	})

	prompt := survey.Select{
		Message: "Pick an example",
		Options: names,
		Description: func(_ string, index int) string {
			return examples[index].Title
		},
		Filter: func(filter, value string, index int) bool {
			return fuzzy.MatchNormalizedFold(filter, value) ||
				fuzzy.MatchNormalizedFold(filter, examples[index].Title)
		},
		PageSize: 10,
	}

	if last, ok := history.Last().Get(); ok && tour.Get(last).IsPresent() {
		prompt.Default = last
	}

	var name string
	if err := survey.AskOne(&prompt, &name); err != nil {
		return nil, fmt.Errorf("select example: %w", err)
	}

	return tour.Lookup(name)
}
