package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/form"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/prompt"
)

func main() {
	defPath := flag.String("definition", "", "YAML form definition path")
	source := flag.String("source", "", "OpenAPI document path or URL")
	opID := flag.String("operation", "", "operation ID when loading from OpenAPI")
	output := flag.String("output", "", "output file for submitted values (stdout if empty)")
	sanitize := flag.Bool("sanitize", false, "strip HTML from string answers")
	flag.Parse()

	ctx := context.Background()

	def, err := loadDefinition(ctx, *defPath, *source, *opID)
	if err != nil {
		log.Fatalf("Failed to load definition: %v", err)
	}

	var options []form.Option
	if *sanitize {
		options = append(options, formstate.WithSanitizedStrings())
	}
	controller := formstate.New(options...)

	runner, err := prompt.New(def, controller)
	if err != nil {
		log.Fatalf("Failed to build runner: %v", err)
	}

	values, err := runner.Run(ctx, func(_ context.Context, values form.Values) error {
		return writeValues(*output, values)
	})
	if err != nil {
		log.Fatalf("Form not submitted: %v", err)
	}

	if *output != "" {
		fmt.Printf("Submitted %d values to %s\n", len(values), *output)
	}
}

func loadDefinition(ctx context.Context, defPath, source, opID string) (formstate.Definition, error) {
	switch {
	case defPath != "":
		return formstate.LoadDefinition(defPath)
	case source != "":
		if opID == "" {
			return formstate.Definition{}, fmt.Errorf("-operation is required with -source")
		}
		return formstate.DefinitionFromOpenAPI(ctx, parseSource(source), opID,
			pkgopenapi.WithHTTPFallback(30*time.Second))
	default:
		return formstate.Definition{}, fmt.Errorf("either -definition or -source is required")
	}
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}

func writeValues(output string, values form.Values) error {
	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	payload = append(payload, '\n')

	if output == "" {
		_, err = os.Stdout.Write(payload)
		return err
	}
	return os.WriteFile(output, payload, 0o644)
}
