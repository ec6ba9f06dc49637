package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gofrs/uuid"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	brainfuck "github.com/ktfth/brainfuck-go"
	"github.com/ktfth/brainfuck-go/vm"
)

var rootCmd = &cobra.Command{
	Use:     "brainfuck [file]",
	Short:   "Run Brainfuck programs",
	Long:    "Brainfuck interpreter. Runs a program from a file, the -c flag, or piped stdin.",
	Args:    cobra.MaximumNArgs(1),
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		logger := newLogger()
		source, filename, err := readSource(args, viper.GetString("code"), os.Stdin, stdinIsTerminal())
		if err != nil {
			return fatal(err)
		}
		logger.Debug().Str("filename", filename).Int("source_bytes", len(source)).Msg("program loaded")

		code, err := brainfuck.Compile(source, brainfuck.WithFilename(filename))
		if err != nil {
			return fatal(err)
		}
		logger.Debug().Int("instructions", code.InstructionCount()).Msg("program compiled")

		opts := []vm.Option{
			vm.WithInput(os.Stdin),
			vm.WithOutput(os.Stdout),
		}
		if size := viper.GetInt("tape-size"); size > 0 {
			opts = append(opts, vm.WithTapeSize(size))
		}
		if limit := viper.GetInt64("max-steps"); limit > 0 {
			opts = append(opts, vm.WithObserver(&stepLimiter{limit: limit}))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		start := time.Now()
		err = vm.Run(ctx, code, opts...)
		elapsed := time.Since(start)
		if err != nil {
			logger.Debug().Dur("elapsed", elapsed).Err(err).Msg("run failed")
			return fatal(err)
		}
		logger.Debug().Dur("elapsed", elapsed).Msg("run complete")
		if viper.GetBool("timing") {
			fmt.Fprintf(os.Stderr, "execution time: %s\n", elapsed)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("code", "c", "", "Code to evaluate")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.Flags().Bool("timing", false, "Show execution time")
	rootCmd.Flags().Int("tape-size", 0, "Number of tape cells to preallocate")
	rootCmd.Flags().Int64("max-steps", 0, "Abort after this many instructions (0 = no limit)")

	// Binding a registered flag only fails on a nil flag, so these errors
	// carry no information worth surfacing.
	_ = viper.BindPFlag("code", rootCmd.PersistentFlags().Lookup("code"))
	_ = viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("timing", rootCmd.Flags().Lookup("timing"))
	_ = viper.BindPFlag("tape-size", rootCmd.Flags().Lookup("tape-size"))
	_ = viper.BindPFlag("max-steps", rootCmd.Flags().Lookup("max-steps"))
}

func initConfig() {
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".brainfuck")
	}
	viper.SetEnvPrefix("brainfuck")
	viper.AutomaticEnv()
	// A missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

func newLogger() zerolog.Logger {
	runID := uuid.Must(uuid.NewV4()).String()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("run_id", runID).Logger()
	if !viper.GetBool("verbose") {
		logger = logger.Level(zerolog.WarnLevel)
	}
	return logger
}

// readSource resolves the program text from, in order of precedence: the
// -c flag, a file argument, or piped stdin. The returned filename is used
// for diagnostics only.
func readSource(args []string, code string, stdin io.Reader, stdinTTY bool) (string, string, error) {
	if code != "" {
		return code, "", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read program: %w", err)
		}
		return string(data), args[0], nil
	}
	if stdin != nil && !stdinTTY {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
	return "", "", fmt.Errorf("no program given (expected a file argument, -c code, or piped stdin)")
}

// stepLimiter aborts a run after a fixed number of instructions. This is
// the host-side bound the core deliberately does not enforce.
type stepLimiter struct {
	limit int64
	count int64
}

func (s *stepLimiter) Config() vm.ObserverConfig {
	return vm.ObserverConfig{StepMode: vm.StepAll}
}

func (s *stepLimiter) OnStep(vm.StepEvent) bool {
	s.count++
	return s.count <= s.limit
}
