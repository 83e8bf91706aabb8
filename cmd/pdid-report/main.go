// pdid-report runs the device-identification pipeline over extracted
// labels and writes the brief and inventory reports.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/smartplan/pdid/internal/labelio"
	"github.com/smartplan/pdid/pkg/pdid"
	"github.com/smartplan/pdid/pkg/pdid/config"
	"github.com/smartplan/pdid/pkg/pdid/report"
)

func main() {
	var (
		labelsPath   = flag.String("labels", "", "Path to labels JSONL file (required)")
		configPath   = flag.String("config", "", "Path to pipeline config YAML (required)")
		briefOut     = flag.String("brief", "", "Write brief report JSON to this file (default: stdout)")
		inventoryOut = flag.String("inventory", "", "Write inventory report JSON to this file")
		text         = flag.Bool("text", false, "Print human-readable reports instead of JSON")
	)
	flag.Parse()

	if *labelsPath == "" {
		log.Fatal("--labels required")
	}
	if *configPath == "" {
		log.Fatal("--config required")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	comp, err := cfg.Build(ctx)
	if err != nil {
		logger.Fatal("build components", zap.Error(err))
	}

	analyzer := pdid.New(pdid.Options{
		Source:     comp.Source,
		Extractor:  comp.Extractor,
		Classifier: comp.Classifier,
		Cache:      comp.Cache,
	})
	defer analyzer.Close()

	labels, err := labelio.LoadFromJSONL(*labelsPath)
	if err != nil {
		logger.Fatal("load labels", zap.Error(err))
	}

	res, err := analyzer.Run(ctx, labels)
	for _, line := range res.Diagnostics {
		if strings.HasPrefix(line, "unknown pdid") || strings.HasPrefix(line, "reconciliation") {
			logger.Warn(line, zap.String("run_id", res.RunID))
		} else {
			logger.Info(line, zap.String("run_id", res.RunID))
		}
	}
	if err != nil {
		logger.Fatal("pipeline run", zap.String("run_id", res.RunID), zap.Error(err))
	}

	logger.Info("run complete",
		zap.String("run_id", res.RunID),
		zap.Int("total", res.Brief.Summary.TotalCount),
		zap.Int("unknown", res.Brief.Summary.UnknownCount),
		zap.String("total_cost", res.Brief.Summary.TotalCost.StringFixed(2)),
	)

	if *text {
		fmt.Print(report.RenderBrief(res.Brief))
		fmt.Print(report.RenderInventory(res.Inventory))
		return
	}

	if err := emit(*briefOut, res.Brief); err != nil {
		logger.Fatal("write brief report", zap.Error(err))
	}
	if *inventoryOut != "" {
		if err := emit(*inventoryOut, res.Inventory); err != nil {
			logger.Fatal("write inventory report", zap.Error(err))
		}
	}
}

// emit writes v as indented JSON to path, or stdout when path is empty.
func emit(path string, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if path == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(path, append(out, '\n'), 0644)
}
