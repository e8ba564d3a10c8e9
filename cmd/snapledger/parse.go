package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/snapledger/snapledger/internal/classify"
	"github.com/snapledger/snapledger/internal/cli"
	"github.com/snapledger/snapledger/internal/model"
	"github.com/snapledger/snapledger/internal/ocr"
	"github.com/snapledger/snapledger/internal/pipeline"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse OCR responses into draft bills",
		Long: `Parse provider OCR response files (JSON) into structured draft bills.

Each file holds one provider response: either an object with a
text_detections array, or a bare array of detection objects. With multiple
files the batch runs with per-item isolation - one bad file never aborts
the rest.

Examples:
  snapledger parse receipt.json
  snapledger parse scans/*.json --jobs 4
  snapledger parse receipt.json --json --save`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().Bool("json", false, "Emit machine-readable JSON instead of styled output")
	cmd.Flags().IntP("jobs", "j", 1, "Number of batch items to process concurrently")
	cmd.Flags().Bool("save", false, "Persist successfully parsed bills to the ledger")

	_ = viper.BindPFlag("parse.json", cmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("parse.jobs", cmd.Flags().Lookup("jobs"))
	_ = viper.BindPFlag("parse.save", cmd.Flags().Lookup("save"))

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	asJSON := viper.GetBool("parse.json")
	jobs := viper.GetInt("parse.jobs")
	save := viper.GetBool("parse.save")

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(db)

	rules, err := db.GetCategoryRules(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to load category rules: %w", err)
	}
	if len(rules) == 0 {
		// Nothing seeded yet: classify against the built-in table.
		rules = classify.DefaultRules()
	}

	items := make([]ocr.Response, len(args))
	for i, path := range args {
		resp, readErr := readResponse(path)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", path, readErr)
		}
		items[i] = resp
	}

	var parser pipeline.Parser = pipeline.New()
	if !asJSON && len(items) > 1 {
		parser = &progressParser{
			inner: parser,
			bar:   progressbar.Default(int64(len(items)), "parsing"),
		}
	}

	result := pipeline.NewBatch(parser, jobs).Process(items, rules)

	if save {
		for _, item := range result.Results {
			if !item.Success {
				continue
			}
			if _, saveErr := db.SaveBill(ctx, *item.Bill); saveErr != nil {
				return fmt.Errorf("failed to save bill for %s: %w", args[item.Index], saveErr)
			}
		}
	}

	if asJSON {
		return writeJSON(os.Stdout, result)
	}

	for _, item := range result.Results {
		fmt.Println(cli.SubtleStyle.Render(args[item.Index]))
		if item.Success {
			fmt.Println(cli.RenderBill(*item.Bill))
		} else {
			fmt.Println(cli.ErrorStyle.Render("  ✗ " + item.Error))
		}
	}
	if len(result.Results) > 1 {
		fmt.Println(cli.RenderBatchSummary(result))
	}

	if result.SuccessCount == 0 {
		return fmt.Errorf("no input produced a bill")
	}
	return nil
}

// readResponse loads a provider OCR response from a JSON file. Both the
// object form ({"text_detections": [...]}) and a bare detection array are
// accepted.
func readResponse(path string) (ocr.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ocr.Response{}, err
	}

	var resp ocr.Response
	if err := json.Unmarshal(data, &resp); err == nil && resp.TextDetections != nil {
		return resp, nil
	}

	var detections []ocr.Detection
	if err := json.Unmarshal(data, &detections); err != nil {
		return ocr.Response{}, fmt.Errorf("not a recognized OCR response: %w", err)
	}
	return ocr.Response{TextDetections: detections}, nil
}

func writeJSON(w *os.File, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// progressParser wraps a Parser and advances a progress bar per item. Batch
// items may run concurrently; the bar handles its own locking.
type progressParser struct {
	inner pipeline.Parser
	bar   *progressbar.ProgressBar
}

func (p *progressParser) Parse(resp ocr.Response, rules []model.CategoryRule) model.DraftBill {
	defer func() {
		_ = p.bar.Add(1)
	}()
	return p.inner.Parse(resp, rules)
}
