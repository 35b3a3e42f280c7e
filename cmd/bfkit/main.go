// The bfkit command runs Brainfuck programs on a selectable backend and
// disassembles their compiled IR.
package main

import (
	"fmt"
	"os"

	"github.com/cloudcmds/bfkit"
	"github.com/cloudcmds/bfkit/dis"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	flagBackend string
	flagVerbose bool
	flagNoColor bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "bfkit <file>",
		Short:         "Run a Brainfuck program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			runHandler(args[0])
		},
	}
	rootCmd.Flags().StringVar(&flagBackend, "vm", "ir",
		"backend to execute with (raw, ir, or jit)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"log compile metrics to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false,
		"disable colored output")

	disCmd := &cobra.Command{
		Use:   "dis <file>",
		Short: "Disassemble a program's compiled IR",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			disHandler(args[0])
		},
	}
	rootCmd.AddCommand(disCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("bfkit", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func runHandler(path string) {
	backend, err := bfkit.ParseBackend(flagBackend)
	if err != nil {
		fatal(err)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	logger := zerolog.Nop()
	if flagVerbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	}
	err = bfkit.Run(source,
		bfkit.WithBackend(backend),
		bfkit.WithInput(os.Stdin),
		bfkit.WithOutput(os.Stdout),
		bfkit.WithLogger(logger),
		bfkit.WithFilename(path))
	if err != nil {
		fatal(err)
	}
}

func disHandler(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	program, err := bfkit.Compile(source, bfkit.WithFilename(path))
	if err != nil {
		fatal(err)
	}
	dis.Print(dis.Disassemble(program), os.Stdout)
}
