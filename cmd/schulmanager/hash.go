package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lfanzott/schulmanager/internal/encoding"
)

var (
	flagHashAlg  string
	flagHashFile string
)

var hashCmd = &cobra.Command{
	Use:   "hash [text]",
	Short: "Compute a message digest of a text or a file",
	Long: `Compute a message digest and print it in hex and base64.

Examples:
  schulmanager hash geheim
  schulmanager hash --alg sha512 geheim
  schulmanager hash --file termine.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, err := encoding.ParseAlgorithm(flagHashAlg)
		if err != nil {
			return err
		}

		var digest []byte
		switch {
		case flagHashFile != "":
			if len(args) > 0 {
				return fmt.Errorf("pass either a text or --file, not both")
			}
			digest, err = encoding.HashFile(flagHashFile, alg)
		case len(args) == 1:
			digest, err = encoding.Hash(args[0], alg)
		default:
			return fmt.Errorf("nothing to hash, pass a text or --file")
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "hex:   ", encoding.ToHex(digest))
		fmt.Fprintln(cmd.OutOrStdout(), "base64:", encoding.ToBase64(digest))
		return nil
	},
}

func init() {
	hashCmd.Flags().StringVarP(&flagHashAlg, "alg", "a", string(encoding.SHA256),
		"digest algorithm (md5|sha1|sha256|sha384|sha512)")
	hashCmd.Flags().StringVarP(&flagHashFile, "file", "f", "",
		"hash the contents of this file instead of a text argument")
	rootCmd.AddCommand(hashCmd)
}
