package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hotloop/hotloop/internal/common"
	"github.com/hotloop/hotloop/internal/kernel/reduce"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(common.VersionString)
		fmt.Printf("go: %s, %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Printf("evaluate kernel: %s\n", reduce.Kernel())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
