package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hotloop/hotloop/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench [group...]",
	Short: "Time kernel pairs and cross-check their results",
	Long: `Bench runs the standard kernel suite, or only the named groups, and
prints one row per variant. Variants of a group run the same workload,
so their checksums must match; a mismatch fails the run.

Use "hotloop kernels" to list the available groups.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := &bench.Runner{
			Size:  viper.GetInt("size"),
			Iters: viper.GetInt("iters"),
		}

		start := time.Now()
		results, err := runner.RunGroups(args)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		renderResults(results)
		fmt.Printf("%d variants in %v (size=%d, iters=%d)\n",
			len(results), elapsed.Round(time.Millisecond), runner.Size, runner.Iters)

		if bad := bench.Verify(results); len(bad) != 0 {
			return fmt.Errorf("checksum mismatch between variants of: %v", bad)
		}
		return nil
	},
}

func renderResults(results []bench.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Group", "Variant", "ns/op", "Elapsed", "Checksum"})

	lastGroup := ""
	for _, res := range results {
		if lastGroup != "" && res.Group != lastGroup {
			t.AppendSeparator()
		}
		lastGroup = res.Group

		t.AppendRow(table.Row{
			res.Group,
			res.Variant,
			fmt.Sprintf("%.1f", res.NsPerOp),
			res.Elapsed.Round(time.Microsecond),
			res.Checksum,
		})
	}

	t.Render()
}

func init() {
	rootCmd.AddCommand(benchCmd)
}
