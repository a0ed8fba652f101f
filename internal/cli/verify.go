package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	tcose "github.com/veracruz-project/t-cose-go"
	"github.com/veracruz-project/t-cose-go/internal/cliutil"
)

func newVerifyCommand() *cobra.Command {
	var (
		keyPath           string
		inPath            string
		requireKID        bool
		allowShortCircuit bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a COSE_Sign1 message against a public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyPath == "" && cfg != nil {
				keyPath = cfg.KeyPath
			}
			if !cmd.Flags().Changed("require-kid") && cfg != nil {
				requireKID = cfg.RequireKID
			}
			if !cmd.Flags().Changed("allow-short-circuit") && cfg != nil {
				allowShortCircuit = cfg.AllowShortCircuit
			}

			log, _ := cliutil.NewRequestLogger(cfg != nil && cfg.LogTextFormat)
			log = log.WithField("in", inPath)

			keyData, err := os.ReadFile(keyPath)
			if err != nil {
				return errors.Wrap(err, "reading key file")
			}
			pub, err := tcose.LoadPublicKey(keyData)
			if err != nil {
				return errors.Wrap(err, "loading public key")
			}

			message, err := os.ReadFile(inPath)
			if err != nil {
				return errors.Wrap(err, "reading input message")
			}

			var opts tcose.VerifyOptions
			if requireKID {
				opts |= tcose.VerifyOptionRequireKID
			}
			if allowShortCircuit {
				opts |= tcose.VerifyOptionAllowShortCircuit
			}

			payload, err := tcose.Verify1(message, pub, opts)
			if err != nil {
				log.WithError(err).Error("verification failed")
				return err
			}

			log.WithField("payload_len", len(payload)).Info("verification succeeded")
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyPath, "key", "", "path to a PEM or COSE_Key public key")
	cmd.Flags().StringVar(&inPath, "in", "", "path to the COSE_Sign1 message")
	cmd.Flags().BoolVar(&requireKID, "require-kid", false, "fail unless the message carries a key id")
	cmd.Flags().BoolVar(&allowShortCircuit, "allow-short-circuit", false, "accept a short-circuit signature (shortcircuit builds only)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
