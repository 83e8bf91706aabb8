// plan-ingest converts an HTML slide export into the labels JSONL
// format consumed by pdid-report.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/smartplan/pdid/internal/labelio"
	"github.com/smartplan/pdid/internal/slidehtml"
)

func main() {
	var (
		input  = flag.String("input", "", "Path to HTML slide export (required)")
		output = flag.String("output", "", "Path to labels JSONL output (default: stdout)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	in, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer in.Close()

	labels, err := slidehtml.Parse(in)
	if err != nil {
		log.Fatalf("parse slides: %v", err)
	}
	log.Printf("extracted %d labels from %s", len(labels), *input)

	out := os.Stdout
	if *output != "" {
		out, err = os.Create(*output)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer out.Close()
	}

	if err := labelio.Write(out, labels); err != nil {
		log.Fatalf("write labels: %v", err)
	}
}
