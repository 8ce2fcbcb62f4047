// cmd/nibblecheck/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frankasd12/NibbleCheck-Mobile/internal/api"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/config"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/errors"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/logger"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/safety"
)

func main() {
	mode := flag.String("mode", "text", "lookup mode: text | barcode | image | tokens")
	input := flag.String("input", "", "ingredient text, barcode, image path, or comma-separated tokens")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting nibblecheck", map[string]interface{}{
		"version": cfg.App.Version,
		"baseUrl": cfg.API.BaseURL,
	})

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Address, log)
	}

	client := api.NewClient(cfg.API, log)
	ctx := context.Background()

	var items []safety.Item
	switch *mode {
	case "text":
		var overall safety.Verdict
		items, overall, err = client.ResolveText(ctx, *input)
		if err == nil {
			log.Info("overall status", map[string]interface{}{"verdict": string(overall)})
		}
	case "barcode":
		items, err = client.ResolveBarcode(ctx, *input)
	case "image":
		items, err = client.ClassifyImage(ctx, *input)
	case "tokens":
		var hits []safety.ResolveHit
		hits, err = client.ResolveTokens(ctx, splitTokens(*input))
		if err == nil {
			printJSON(hits)
			return
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}

	if err != nil {
		scanErr := errors.Classify(err)
		fmt.Fprintln(os.Stderr, scanErr.Message)
		os.Exit(1)
	}

	printJSON(items)
}

func splitTokens(input string) []string {
	parts := strings.Split(input, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func serveMetrics(address string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(address, mux); err != nil {
		log.Warn("metrics listener stopped", map[string]interface{}{"error": err.Error()})
	}
}
