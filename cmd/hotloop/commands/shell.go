package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hotloop/hotloop/internal/bench"
	"github.com/hotloop/hotloop/internal/kernel/reduce"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive kernel shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, err := newShell()
		if err != nil {
			return err
		}
		defer sh.Close()
		return sh.Run()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// shell is an interactive loop for running kernels and evaluating
// sequences without re-invoking the binary.
type shell struct {
	readline  *readline.Instance
	runner    *bench.Runner
	threshold int64
}

func newShell() (*shell, error) {
	// History file in the user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	historyFile := homeDir + "/.hotloop_history"

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[1;36m>\033[0m ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %v", err)
	}

	return &shell{
		readline: rl,
		runner: &bench.Runner{
			Size:  viper.GetInt("size"),
			Iters: viper.GetInt("iters"),
		},
		threshold: viper.GetInt64("threshold"),
	}, nil
}

func (s *shell) Close() error {
	return s.readline.Close()
}

// Run starts the shell loop.
func (s *shell) Run() error {
	fmt.Println("Hotloop kernel shell")
	fmt.Println("Enter commands, 'help' for assistance, or 'exit' to quit.")
	fmt.Println("Use Up/Down arrows for history, Ctrl+R to search history.")

	for {
		line, err := s.readline.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				break
			}
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		fields := strings.Fields(input)
		switch strings.ToLower(fields[0]) {
		case "exit", "quit", "\\q":
			return nil
		case "help", "\\h", "\\?":
			s.printHelp()
		case "kernels":
			for _, g := range bench.Groups() {
				fmt.Println(" ", g)
			}
			fmt.Println("evaluate dispatches to:", reduce.Kernel())
		case "run":
			s.runBench(fields[1:])
		case "eval":
			s.evalSequence(fields[1:])
		case "threshold":
			s.setThreshold(fields[1:])
		case "size":
			s.setInt(&s.runner.Size, fields[1:])
		case "iters":
			s.setInt(&s.runner.Iters, fields[1:])
		default:
			fmt.Fprintf(os.Stderr, "\033[1;31mError:\033[0m unknown command %q, try 'help'\n", fields[0])
		}
	}

	return nil
}

func (s *shell) runBench(groups []string) {
	start := time.Now()
	results, err := s.runner.RunGroups(groups)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\033[1;31mError:\033[0m %v\n", err)
		return
	}

	renderResults(results)
	if bad := bench.Verify(results); len(bad) != 0 {
		fmt.Fprintf(os.Stderr, "\033[1;31mError:\033[0m checksum mismatch in %v\n", bad)
		return
	}
	fmt.Printf("\033[1;32mCompleted in %v\033[0m\n", time.Since(start).Round(time.Millisecond))
}

func (s *shell) evalSequence(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: eval <int>...")
		return
	}

	seq := make([]int64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[1;31mError:\033[0m not an integer: %q\n", arg)
			return
		}
		seq = append(seq, v)
	}

	sum := reduce.SumEvenBranchless(seq)
	fmt.Printf("even sum = %d, threshold = %d: %v\n",
		sum, s.threshold, reduce.Evaluate(seq, s.threshold))
}

func (s *shell) setThreshold(args []string) {
	if len(args) == 0 {
		fmt.Println("threshold =", s.threshold)
		return
	}
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\033[1;31mError:\033[0m not an integer: %q\n", args[0])
		return
	}
	s.threshold = v
}

func (s *shell) setInt(dst *int, args []string) {
	if len(args) == 0 {
		fmt.Println(*dst)
		return
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v <= 0 {
		fmt.Fprintf(os.Stderr, "\033[1;31mError:\033[0m need a positive integer, got %q\n", args[0])
		return
	}
	*dst = v
}

func (s *shell) printHelp() {
	fmt.Println("Hotloop kernel shell")
	fmt.Println("")
	fmt.Println("  Commands:")
	fmt.Println("    run [group...]      Time kernel groups (all when omitted)")
	fmt.Println("    eval <int>...       Evaluate the even-sum reducer")
	fmt.Println("    kernels             List kernel groups")
	fmt.Println("    threshold [n]       Show or set the reducer threshold")
	fmt.Println("    size [n]            Show or set elements per op")
	fmt.Println("    iters [n]           Show or set iterations per variant")
	fmt.Println("    help, \\h, \\?       Show this help message")
	fmt.Println("    exit, quit, \\q     Leave the shell")
	fmt.Println("")
}
