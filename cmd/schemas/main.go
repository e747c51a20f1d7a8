// Command schemas prints the self-test blocks for the billing table schemas:
// for each schema, its full example row and the minimal projection, framed
// by the marker lines downstream harnesses scrape for.
//
// With no arguments every schema is printed; otherwise only the named ones.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/feewise/billgraph/internal/models"
	"github.com/feewise/billgraph/pkg/config"
	"github.com/feewise/billgraph/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.MustLoad()

	if _, err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	byName := map[string]models.Schema{}
	var order []string
	for _, s := range models.Examples() {
		name := models.ExampleName(s)
		byName[name] = s
		order = append(order, name)
	}

	if len(args) > 0 {
		order = args
	}

	for _, name := range order {
		s, ok := byName[name]
		if !ok {
			fmt.Printf("Error: unknown schema %q\n", name)
			return 1
		}
		if err := printExample(name, s); err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
	}

	logger.L().Info("schema examples emitted", zap.Int("schemas", len(order)))
	return 0
}

func printExample(name string, s models.Schema) error {
	if err := s.Validate(); err != nil {
		return err
	}

	indent := strings.Repeat(" ", config.Get().OutputIndent)
	full, err := json.MarshalIndent(s, "", indent)
	if err != nil {
		return err
	}
	minimal, err := models.Minimal(s)
	if err != nil {
		return err
	}
	minimalJSON, err := json.MarshalIndent(minimal, "", indent)
	if err != nil {
		return err
	}

	// Marker text (typo included) is a compatibility contract with existing
	// harnesses.
	fmt.Printf("----begin example: %s----\n", name)
	fmt.Println(string(full))
	fmt.Printf("----begin minmal example: %s----\n", name)
	fmt.Println(string(minimalJSON))
	fmt.Printf("----end: %s----\n", name)
	return nil
}
