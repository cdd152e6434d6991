// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linkdeck",
	Short: "LinkDeck is a self-hosted link-in-bio page with a visual editor",
	Long: `LinkDeck serves a personal landing page that collects your links,
text blocks and ad slots on one URL, with a split-screen admin editor,
image uploads and a built-in visit counter.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
