package main

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/subc-lang/subc/codegen"
	"github.com/subc-lang/subc/compiler"
	"github.com/subc-lang/subc/config"
)

func newBuildCmd() *cobra.Command {
	var outputDir string
	var configPath string

	cmd := &cobra.Command{
		Use:   "build <file> [file...]",
		Short: "Compile one or more subc source files to assembly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(resolveConfigPath(configPath))
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}
			// --no-color always wins if set; otherwise the config file's
			// color: false also disables it.
			if !color.NoColor && !cfg.WantsColor() {
				color.NoColor = true
			}
			opts := codegen.Options{MainAlias: cfg.WantsMainAlias()}

			failed := false
			for _, path := range args {
				if err := buildOne(path, outputDir, opts); err != nil {
					printStageError(err)
					failed = true
					continue
				}
			}
			if failed {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory to write .s files into (default: alongside source)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to subc.yaml (default: ./subc.yaml)")
	return cmd
}

func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return "subc.yaml"
}

func buildOne(path, outputDir string, opts codegen.Options) error {
	asm, outPath, err := compiler.CompileFile(path, outputDir, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outPath); outputDir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(outPath, []byte(asm), 0o644); err != nil {
		return err
	}
	greenColor.Fprintf(os.Stdout, "compiled %s -> %s\n", path, outPath)
	return nil
}
