package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	shapecheck "github.com/shapecheck/shapecheck"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a document against a pattern",
	Long: `Reads a JSON or YAML document from the given file (or stdin when the
file is "-" or omitted) and checks it against the pattern file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var (
	patternFile string
	displayName string
	docFormat   string
)

func init() {
	checkCmd.Flags().StringVarP(&patternFile, "pattern", "p", "", "pattern file, JSON or YAML (required)")
	checkCmd.Flags().StringVarP(&displayName, "name", "n", shapecheck.DefaultName, "display name for the checked value")
	checkCmd.Flags().StringVar(&docFormat, "format", "auto", "document format: json, yaml or auto")
	_ = checkCmd.MarkFlagRequired("pattern")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	pat, err := loadPattern(patternFile)
	if err != nil {
		return err
	}
	doc, target, err := loadDocument(args)
	if err != nil {
		return err
	}
	if err := shapecheck.CheckNamed(doc, pat, displayName); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", passText("PASS"), target)
	return nil
}

func loadPattern(path string) (shapecheck.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isYAMLPath(path) {
		return shapecheck.PatternYAML(data)
	}
	return shapecheck.PatternJSON(data)
}

func loadDocument(args []string) (any, string, error) {
	var (
		data   []byte
		target string
		err    error
	)
	if len(args) == 0 || args[0] == "-" {
		target = "stdin"
		data, err = io.ReadAll(os.Stdin)
	} else {
		target = args[0]
		data, err = os.ReadFile(target)
	}
	if err != nil {
		return nil, target, err
	}
	if docFormat == "yaml" || (docFormat == "auto" && isYAMLPath(target)) {
		v, err := shapecheck.ValueYAML(data)
		return v, target, err
	}
	v, err := shapecheck.ValueJSON(data)
	return v, target, err
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
