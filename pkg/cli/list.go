/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Muream/mayapy-launcher/pkg/install"
	"github.com/Muream/mayapy-launcher/pkg/serializers"
)

// installation is one row of the list command's output.
type installation struct {
	Release install.Release `json:"release" yaml:"release"`
	Path    string          `json:"path" yaml:"path"`
	Mayapy  string          `json:"mayapy,omitempty" yaml:"mayapy,omitempty"`
}

var (
	listOutput string
	listFormat string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	GroupID: "inspection",
	Short:   "List installed Maya releases",
	Long: `Enumerate every installed Maya release with its installation directory and
the path of its mayapy interpreter. Releases without a usable mayapy are
still listed; their mayapy column is left empty.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		outFormat := serializers.Format(listFormat)
		if outFormat.IsUnknown() {
			return fmt.Errorf("unknown output format: %q", outFormat)
		}

		store := newStore()

		releases, err := store.Releases(cmd.Context())
		if err != nil {
			return err
		}

		// Path lookups are independent per release; gather them in parallel.
		rows := make([]installation, len(releases))
		g, ctx := errgroup.WithContext(cmd.Context())
		for i, release := range releases {
			g.Go(func() error {
				path, err := store.InstallPath(ctx, release)
				if err != nil {
					return err
				}

				// A broken install without bin/mayapy is inventory, not an
				// error.
				mayapy, err := store.Mayapy(ctx, release)
				if err != nil {
					mayapy = ""
				}

				rows[i] = installation{
					Release: release,
					Path:    path,
					Mayapy:  mayapy,
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		return serializers.NewFileWriterOrStdout(outFormat, listOutput).Serialize(rows)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "output file path (default: stdout)")
	listCmd.Flags().StringVarP(&listFormat, "format", "t", "table", "output format (json, yaml, table)")
}
