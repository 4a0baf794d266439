package main

import (
	"fmt"

	"github.com/spf13/cobra"

	internalconfig "github.com/lintkit/rufflink/internal/config"
)

var globalFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a commented default configuration. By default the file goes to
rufflink.toml in the working directory; with --global it goes to
~/.rufflink/config.toml. Existing files are never overwritten.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&globalFlag, "global", "g", false, "Write the global configuration file")
}

func runInit(_ *cobra.Command, _ []string) error {
	writer, err := internalconfig.NewWriter()
	if err != nil {
		return err
	}

	path, err := writer.WriteDefault(globalFlag)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)

	return nil
}
