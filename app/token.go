package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkdeck/linkdeck/internal/uniuri"
)

func init() { //nolint: gochecknoinits
	tokenCmd.Flags().IntVar(&tokenLength, "length", uniuri.UUIDLen, "Token length")

	rootCmd.AddCommand(tokenCmd)
}

var (
	tokenLength int

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Generate a random admin token for [webserver] admintoken",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(uniuri.NewLen(tokenLength))

			return nil
		},
	}
)
