package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	tcose "github.com/veracruz-project/t-cose-go"
)

func newInspectCommand() *cobra.Command {
	var inPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode a COSE_Sign1 message's headers without verifying it",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := os.ReadFile(inPath)
			if err != nil {
				return errors.Wrap(err, "reading input message")
			}

			result, err := tcose.Inspect(message)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(result)
			if err != nil {
				return errors.Wrap(err, "marshaling inspect result")
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "path to the COSE_Sign1 message")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
