// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-to-md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf-to-md CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-to-md",
	Short: "Reconstruct structured Markdown from PDF documents",
	Long: `pdf-to-md recovers document structure from PDF files and emits Markdown.
It profiles the document's font sizes to find body text and heading levels,
reassembles paragraphs, lists, and headings from positioned text spans, and
renders them with inline bold and italic formatting preserved.

Each stage is a subcommand: fetch downloads PDFs, convert turns them into
Markdown, ledger tracks conversion state, and sample generates a small
demonstration PDF.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-to-md.yaml or ~/.config/pdf-to-md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-to-md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-to-md"))
		}
	}

	viper.SetEnvPrefix("PDF_TO_MD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
