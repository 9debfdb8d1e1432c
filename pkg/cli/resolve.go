/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Muream/mayapy-launcher/pkg/install"
	"github.com/Muream/mayapy-launcher/pkg/serializers"
)

// resolution is the output of the resolve command: the release that would be
// launched, where its interpreter lives, and how it was detected.
type resolution struct {
	Release install.Release `json:"release" yaml:"release"`
	Mayapy  string          `json:"mayapy" yaml:"mayapy"`
	Probe   string          `json:"probe" yaml:"probe"`
	Python  string          `json:"python,omitempty" yaml:"python,omitempty"`
}

var (
	resolveOutput string
	resolveFormat string
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:     "resolve",
	Aliases: []string{"which"},
	GroupID: "inspection",
	Short:   "Resolve the mayapy version without launching it",
	Long: `Run the full version resolution and print the outcome instead of launching:
which Maya release won, the path of its mayapy interpreter, the probe that
produced the answer, and the detected Python version when the answer came
through the compatibility mapping.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		outFormat := serializers.Format(resolveFormat)
		if outFormat.IsUnknown() {
			return fmt.Errorf("unknown output format: %q", outFormat)
		}

		store := newStore()

		outcome, err := newRunner(store).Resolve(cmd.Context())
		if err != nil {
			return err
		}

		mayapy, err := store.Mayapy(cmd.Context(), outcome.Release)
		if err != nil {
			return err
		}

		return serializers.NewFileWriterOrStdout(outFormat, resolveOutput).Serialize(resolution{
			Release: outcome.Release,
			Mayapy:  mayapy,
			Probe:   outcome.Probe,
			Python:  outcome.Python,
		})
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "", "output file path (default: stdout)")
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "t", "json", "output format (json, yaml, table)")
}
