package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hotloop/hotloop/internal/bench"
	"github.com/hotloop/hotloop/internal/kernel/reduce"
)

var kernelsCmd = &cobra.Command{
	Use:   "kernels",
	Short: "List kernel groups and their variants",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Group", "Variants"})

		variants := make(map[string][]string)
		var order []string
		for _, b := range bench.Suite() {
			if _, ok := variants[b.Group]; !ok {
				order = append(order, b.Group)
			}
			variants[b.Group] = append(variants[b.Group], b.Variant)
		}

		for _, group := range order {
			row := ""
			for i, v := range variants[group] {
				if i > 0 {
					row += ", "
				}
				row += v
			}
			t.AppendRow(table.Row{group, row})
		}

		t.Render()
		fmt.Printf("evaluate dispatches to: %s\n", reduce.Kernel())
	},
}

func init() {
	rootCmd.AddCommand(kernelsCmd)
}
