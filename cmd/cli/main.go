// Command resumewright-cli converts a single TSX resume file to PDF
// without starting the HTTP server, grounded on the same flag-parsing and
// config-loading shape cmd/server uses, for local and CI use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"resumewright"
)

func main() {
	var (
		inPath     = flag.String("in", "", "path to the input .tsx file (required)")
		outPath    = flag.String("out", "", "path to write the output .pdf file (required)")
		configPath = flag.String("config", "", "optional path to a resumewright.Config YAML file")
		standard   = flag.String("standard", "", "override the conformance standard: PDF17 or PDFA1b")
		verbose    = flag.Bool("v", false, "print progress events to stderr")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: resumewright-cli -in resume.tsx -out resume.pdf [-config config.yaml] [-standard PDFA1b]")
		os.Exit(2)
	}

	cfg := resumewright.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("reading config: %v", err)
		}
		cfg, err = resumewright.LoadConfigYAML(data)
		if err != nil {
			log.Fatalf("parsing config: %v", err)
		}
	}
	if *standard != "" {
		cfg.Standard = resumewright.Standard(*standard)
	}

	tsx, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	var onProgress resumewright.ProgressFunc
	if *verbose {
		onProgress = func(stage string, percent int) {
			fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", percent, stage)
		}
	}

	pdf, err := resumewright.ConvertTSXToPDF(context.Background(), string(tsx), cfg, nil, onProgress)
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}

	if err := os.WriteFile(*outPath, pdf, 0o644); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	fmt.Fprintf(os.Stderr, "wrote %d bytes to %s\n", len(pdf), *outPath)
}
