package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go-flatdb/config"
	"go-flatdb/pkg/customerrors"
	"go-flatdb/services"
	"go-flatdb/services/parser"
	"go-flatdb/util/logger"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const prompt = "flatdb > "

// errReported marks failures whose report was already printed.
var errReported = errors.New("command failed")

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	root := newRootCmd(in, out)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		cfgPath   string
		dataDir   string
		chunkSize int
		logLevel  string
		svc       *services.Services
	)

	root := &cobra.Command{
		Use:           "flatdb",
		Short:         "Relational operators over CSV table files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if flags.Changed("data") {
				cfg.Engine.DataDir = dataDir
			}
			if flags.Changed("chunk-size") {
				cfg.Engine.ChunkSize = chunkSize
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := logger.Configure(cfg.Log.Level); err != nil {
				return err
			}

			var err error
			svc, err = services.New(cfg.Engine, logger.L)
			return err
		},
	}

	defaults := config.New()
	pf := root.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&dataDir, "data", "d", defaults.Engine.DataDir, "directory holding the table files")
	pf.IntVar(&chunkSize, "chunk-size", defaults.Engine.ChunkSize, "rows held in memory per chunk")
	pf.StringVar(&logLevel, "log-level", defaults.Log.Level, "log level (debug, info, warn, error)")

	root.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Read commands from the terminal until 'bye'",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return repl(svc, in, out)
			},
		},
		&cobra.Command{
			Use:     "exec <command>...",
			Short:   "Run commands given as arguments, e.g. 'sort|users|age'",
			Args:    cobra.MinimumNArgs(1),
			Example: "  flatdb exec 'newTable|users|id,name,age' 'addToTable|users|1,Alice,30'",
			RunE: func(_ *cobra.Command, args []string) error {
				return run(svc, args, out)
			},
		},
	)
	return root
}

// run executes lines in order, stopping at the first failure. Warnings such
// as a missing table do not stop it.
func run(svc *services.Services, lines []string, out io.Writer) error {
	for _, line := range lines {
		quit, err := svc.ExecutorService.ExecLine(line, out)
		if err != nil && !customerrors.IsRecoverable(err) {
			return errors.Wrap(errReported, err.Error())
		}
		if quit {
			return nil
		}
	}
	return nil
}

func repl(svc *services.Services, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(parser.SplitCommands)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return customerrors.IO(scanner.Err(), "failed to read commands")
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// failures are already rendered, the session goes on
		if quit, _ := svc.ExecutorService.ExecLine(line, out); quit {
			return nil
		}
	}
}
