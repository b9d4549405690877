package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hotloop/hotloop/internal/kernel/reduce"
)

var evalCmd = &cobra.Command{
	Use:   "eval <int>...",
	Short: "Run the even-sum reducer over the given values",
	Long: `Eval sums the even values among the arguments and reports whether
the sum strictly exceeds the threshold (flag --threshold, config key
"threshold", default 1000).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq := make([]int64, 0, len(args))
		for _, arg := range args {
			v, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("not an integer: %q", arg)
			}
			seq = append(seq, v)
		}

		threshold := viper.GetInt64("threshold")
		sum := reduce.SumEvenBranchless(seq)
		fmt.Printf("even sum = %d, threshold = %d: %v\n",
			sum, threshold, reduce.Evaluate(seq, threshold))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
