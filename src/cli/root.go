// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/cstr-exchange/src/config"
	"github.com/H0llyW00dzZ/cstr-exchange/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/cstr-exchange/src/internal/heap"
	"github.com/H0llyW00dzZ/cstr-exchange/src/internal/scenario"
	"github.com/H0llyW00dzZ/cstr-exchange/src/logger"
	"github.com/H0llyW00dzZ/cstr-exchange/src/native"
	"github.com/spf13/cobra"
)

var (
	// OperationPerformed is set once the scenario suite has started.
	OperationPerformed bool
	// OperationPerformedSuccessfully is set when every case held.
	OperationPerformedSuccessfully bool
)

// ErrContractViolated is returned when at least one case did not behave as
// the ownership contract requires.
var ErrContractViolated = errors.New("ownership contract violated")

type flags struct {
	configFile string
	allocator  string
	failAlloc  bool
	table      bool
	stats      bool
	jsonLog    bool
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return run(ctx, version, log, os.Args[1:], os.Stdout)
}

func run(ctx context.Context, version string, log logger.Logger, args []string, out io.Writer) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	rootCmd := newRootCmd(version, log)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd(version string, log logger.Logger) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "Exercise the ownership contract of a NUL-terminated string boundary",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execCli(cmd, f, log)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&f.configFile, "config", "c", "", "configuration file (.json, .yaml, .yml); defaults to $"+config.EnvConfigFile)
	rootCmd.PersistentFlags().StringVarP(&f.allocator, "allocator", "a", "", "native allocator: mmap, go or failing (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&f.failAlloc, "fail-alloc", false, "force every native allocation to fail")
	rootCmd.PersistentFlags().BoolVarP(&f.jsonLog, "json", "j", false, "emit diagnostics as JSON lines")
	rootCmd.Flags().BoolVarP(&f.table, "table", "t", false, "print case results as a markdown table")
	rootCmd.Flags().BoolVarP(&f.stats, "stats", "s", false, "print native heap ledger statistics")

	rootCmd.AddCommand(newLedgerCmd(f, log))

	return rootCmd
}

// newLedgerCmd runs the scenario suite and prints only the heap ledger.
func newLedgerCmd(f *flags, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "Run the scenario suite and print native heap ledger statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.table = false
			f.stats = true
			return execCli(cmd, f, log)
		},
	}
}

// execCli loads the configuration, builds the native module and runs the
// scenario suite against it.
func execCli(cmd *cobra.Command, f *flags, log logger.Logger) error {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}

	if f.jsonLog || cfg.Log.Format == config.LogFormatJSON {
		log = logger.NewJSONLogger(cmd.OutOrStdout(), cfg.Log.Silent)
	}

	allocatorName := cfg.Allocator
	if f.allocator != "" {
		allocatorName = f.allocator
	}
	if f.failAlloc {
		allocatorName = heap.NameFailing
	}
	allocator, err := heap.ByName(allocatorName)
	if err != nil {
		return err
	}

	module, err := native.New(
		native.WithLogger(log),
		native.WithAllocator(allocator),
		native.WithStaticText(cfg.Static),
		native.WithDynamicPayload(cfg.Dynamic),
		native.WithMalformedPayload(cfg.Malformed),
	)
	if err != nil {
		return fmt.Errorf("building native module: %w", err)
	}

	OperationPerformed = true
	results, err := scenario.Run(cmd.Context(), module)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.table {
		table, err := renderResults(results)
		if err != nil {
			return err
		}
		fmt.Fprint(out, table)
	}
	if f.stats {
		table, err := renderStats(module.Stats())
		if err != nil {
			return err
		}
		fmt.Fprint(out, table)
	}

	failed := scenario.Failed(results)
	log.Printf("%d/%d cases hold (allocator: %s)", len(results)-len(failed), len(results), allocator.Name())
	if len(failed) > 0 {
		for _, r := range failed {
			log.Printf("FAIL %s: want %s, got %s", r.Name, r.Want, r.Got)
		}
		return fmt.Errorf("%w: %d case(s) failed", ErrContractViolated, len(failed))
	}

	OperationPerformedSuccessfully = true
	return nil
}
