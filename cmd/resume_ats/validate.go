package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long: `Validate a JSON file against a JSON Schema file. The schema may also be named by one
of the embedded schemas (structured_resume.schema.json, match_report.schema.json).`,
	RunE: runValidate,
}

var (
	validateSchemaPath string
	validateJSONPath   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to JSON Schema file")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON file to validate")

	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	err := schemas.ValidateJSON(validateSchemaPath, validateJSONPath)
	if err == nil {
		_, _ = fmt.Fprintln(os.Stdout, "Validation passed")
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintln(os.Stderr, "Validation failed")
		for i, fieldErr := range validationErr.Errors {
			_, _ = fmt.Fprintf(os.Stderr, "  %d. %s: %s\n", i+1, fieldErr.Field, fieldErr.Message)
		}
		os.Exit(1)
	}

	return err
}
