package commands

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ErrCheckFailed is returned when at least one checked file is invalid.
var ErrCheckFailed = errors.New("check failed")

const defaultCheckJobs = 4

func newCheckCommand() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate one or more files",
		Long: `Parse every FILE and resolve its inheritance. Each file is reported on its
own line, in argument order, and the command fails if any of them is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}

			results := checkFiles(args, jobs)

			failed := 0

			for i, err := range results {
				if err != nil {
					failed++

					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", args[i], err)

					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", args[i])
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, failed, len(args))
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", defaultCheckJobs, "number of files checked in parallel")

	return cmd
}

// checkFiles returns one result per path, in order.
func checkFiles(paths []string, jobs int) []error {
	results := make([]error, len(paths))

	var g errgroup.Group

	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			_, results[i] = store.New(path)

			return nil
		})
	}

	_ = g.Wait()

	return results
}
