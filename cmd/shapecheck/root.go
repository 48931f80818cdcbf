package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	shapecheck "github.com/shapecheck/shapecheck"
)

var rootCmd = &cobra.Command{
	Use:   "shapecheck",
	Short: "shapecheck validates JSON and YAML documents against shape patterns",
	Long: `shapecheck checks documents against compact shape patterns.

Patterns come in two forms: terse strings ("optional array number") and
annotated objects ({"__type": "array", "__elements": "number"}). Pattern
files may be JSON or YAML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	passText = color.New(color.FgGreen, color.Bold).SprintFunc()
	failText = color.New(color.FgRed, color.Bold).SprintFunc()
	warnText = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// Execute runs the root command and maps failures to exit codes: 1 for
// rejected documents, 2 for broken patterns or setup.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if se, ok := shapecheck.AsError(err); ok {
		if se.Code == shapecheck.CodeInvalidConfig {
			fmt.Fprintf(os.Stderr, "%s %s\n", warnText("ERROR"), se.Message)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%s %s\n", failText("FAIL"), se.Message)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
