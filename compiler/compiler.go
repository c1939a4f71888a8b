/*
Package compiler wires the four pipeline stages — lexer, parser,
validate, codegen — into the single entry point subc's CLI drives: read
source, produce assembly text or a structured *cerrors error. Each stage
short-circuits the next on failure, per spec.md §7.
*/
package compiler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/subc-lang/subc/codegen"
	"github.com/subc-lang/subc/parser"
	"github.com/subc-lang/subc/validate"
)

// CompileSource runs the full pipeline over already-read source text
// and returns the generated assembly. opts carries the driver-level
// codegen knobs (e.g. whether to emit the macOS _main alias) down from
// whatever loaded config.Config.
func CompileSource(src string, opts codegen.Options) (string, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return "", err
	}
	if err := validate.Validate(prog); err != nil {
		return "", err
	}
	return codegen.Generate(prog, opts)
}

// CompileFile reads path, compiles it, and returns the generated
// assembly alongside the output path it should be written to: the
// input's basename with its extension replaced by .s, in the same
// directory unless outputDir is non-empty.
func CompileFile(path, outputDir string, opts codegen.Options) (asm string, outPath string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	asm, err = CompileSource(string(data), opts)
	if err != nil {
		return "", "", err
	}

	outPath = derivedOutputPath(path, outputDir)
	return asm, outPath, nil
}

// derivedOutputPath computes "<stem>.s" for the given input path,
// placed in outputDir if non-empty, otherwise alongside the input.
func derivedOutputPath(path, outputDir string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := stem + ".s"
	if outputDir != "" {
		return filepath.Join(outputDir, name)
	}
	return filepath.Join(filepath.Dir(path), name)
}
