package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/typetour/typetour/key"
	"github.com/typetour/typetour/tour"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("topic", "t", "", "Only list examples of this topic")
	listCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	listCmd.Flags().BoolP("yaml", "y", false, "Format the output as YAML")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	lo.Must0(listCmd.RegisterFlagCompletionFunc("topic", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return tour.Topics(), cobra.ShellCompDirectiveNoFileComp
	}))

	listCmd.SetOut(os.Stdout)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the examples of the tour",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		examples := tour.All()

		if topic := lo.Must(cmd.Flags().GetString("topic")); topic != "" {
			if !lo.Contains(tour.Topics(), topic) {
				handleErr(fmt.Errorf("unknown topic %q, available topics: %v", topic, tour.Topics()))
			}
			examples = tour.ByTopic(topic)
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(examples))
		case lo.Must(cmd.Flags().GetBool("yaml")):
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(examples))
			handleErr(encoder.Close())
		default:
			cmd.Println(examplesTable(examples, viper.GetBool(key.TourShowTopic)))
		}
	},
}

func examplesTable(examples []*tour.Example, withTopic bool) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	header := table.Row{"#", "Name", "Title"}
	if withTopic {
		header = append(header, "Topic")
	}
	tbl.AppendHeader(header)

	for i, e := range examples {
		row := table.Row{i + 1, e.Name, e.Title}
		if withTopic {
			row = append(row, e.Topic)
		}
		tbl.AppendRow(row)
	}

	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d", len(examples))})
	return tbl.Render()
}
