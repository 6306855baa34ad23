package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stiliangoranov/data-structures-and-algorithms/pkg/benchmark"
)

var (
	cfg      = benchmark.DefaultConfig()
	bins     int
	xlsxPath string
	all      bool
)

var rootCmd = &cobra.Command{
	Use:   "dsbench",
	Short: "Time deque and linked list workloads",
	Long: `dsbench runs a workload against one of the containers and prints the
distribution of per-batch ns/op as a histogram. With --all every valid
container/workload pair is run.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer glog.Flush()

		configs := []benchmark.Config{cfg}
		if all {
			configs = configs[:0]
			for _, container := range benchmark.Containers {
				for _, workload := range benchmark.Workloads {
					c := cfg
					c.Container, c.Workload = container, workload
					if c.Validate() == nil {
						configs = append(configs, c)
					}
				}
			}
		}

		var results []*benchmark.Result
		for _, c := range configs {
			glog.Infof("running %s/%s with %d ops", c.Container, c.Workload, c.Ops)
			res, err := benchmark.Run(c)
			if err != nil {
				return err
			}
			if err := benchmark.PrintHistogram(cmd.OutOrStdout(), res, bins); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			results = append(results, res)
		}

		if xlsxPath != "" {
			return benchmark.WriteXLSX(xlsxPath, results)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Container, "container", cfg.Container, "container to benchmark: deque or list")
	rootCmd.Flags().StringVar(&cfg.Workload, "workload", cfg.Workload,
		"workload: push-back, push-front, mixed, drain or random-access")
	rootCmd.Flags().IntVar(&cfg.Ops, "ops", cfg.Ops, "number of timed operations")
	rootCmd.Flags().IntVar(&cfg.BatchSize, "batch", cfg.BatchSize, "operations timed together as one sample")
	rootCmd.Flags().IntVar(&cfg.BlockSize, "block-size", cfg.BlockSize, "deque block size, rounded up to a power of two")
	rootCmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for randomized workloads")
	rootCmd.Flags().IntVar(&bins, "bins", 10, "histogram bins")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write results to this xlsx file")
	rootCmd.Flags().BoolVar(&all, "all", false, "run every container/workload pair")

	// glog registers -v, -logtostderr, ... on the standard flag set
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
}

func main() {
	glog.Info("dsbench starting...")
	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("dsbench: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}
