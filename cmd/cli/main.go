package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dvloznov/bank-middleware-mock/internal/config"
	"github.com/dvloznov/bank-middleware-mock/internal/domain"
	"github.com/dvloznov/bank-middleware-mock/internal/fixtures"
	"github.com/dvloznov/bank-middleware-mock/internal/logger"
	"github.com/dvloznov/bank-middleware-mock/internal/statement"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, _, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	switch os.Args[1] {
	case "statement":
		runStatement(log, cfg)
	case "window":
		runWindow(log, cfg)
	case "fixture":
		runFixture(log, cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Banking Middleware Mock CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  statement  Generate a statement response as the API would")
	fmt.Println("  window     Print the permitted statement window (-check DDMMYYYY)")
	fmt.Println("  fixture    Print a static fixture document")
	fmt.Println("  help       Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runStatement(log zerolog.Logger, cfg config.Config) {
	fs := flag.NewFlagSet("statement", flag.ExitOnError)
	account := fs.String("account", "", "Account number filter")
	from := fs.String("from", "", "From date (DDMMYYYY)")
	to := fs.String("to", "", "To date (DDMMYYYY)")
	seed := fs.Int64("seed", cfg.Seed, "Random seed (0 = time based)")
	mode := fs.String("mode", string(cfg.NarrationMode), "Narration mode: charges or purchase")
	exact := fs.Bool("exact", cfg.ExactDate, "Keep only records dated -from")
	fs.Parse(os.Args[2:])

	narrationMode, err := statement.ParseNarrationMode(*mode)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid -mode")
	}
	cfg.NarrationMode = narrationMode
	cfg.Seed = *seed
	cfg.ExactDate = *exact

	generator, err := statement.NewGenerator(cfg.StatementOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create statement generator")
	}

	var envelope domain.StatementEnvelope
	records, err := generator.Generate(statement.Request{AccountNumber: *account, FromDate: *from, ToDate: *to})
	if err != nil {
		envelope = domain.NewStatementFailure(domain.StatusCodeBadRequest, err.Error())
	} else {
		if !cfg.IncludeAccountNumber {
			for i := range records {
				records[i].AccountNumber = ""
			}
		}
		envelope = domain.NewStatementSuccess(records)
	}

	printJSON(log, envelope)
}

func runWindow(log zerolog.Logger, cfg config.Config) {
	fs := flag.NewFlagSet("window", flag.ExitOnError)
	check := fs.String("check", "", "Report whether a date (DDMMYYYY) falls inside the window")
	fs.Parse(os.Args[2:])

	generator, err := statement.NewGenerator(cfg.StatementOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create statement generator")
	}

	w := generator.Window()
	fmt.Printf("From: %s (%s)\n", statement.FormatDate(w.From), w.From.Format(time.RFC3339Nano))
	fmt.Printf("To:   %s (%s)\n", statement.FormatDate(w.To), w.To.Format(time.RFC3339Nano))

	if *check == "" {
		return
	}
	day, err := statement.ParseDate(*check, w.From.Location())
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid -check date")
	}
	if w.Contains(day) {
		fmt.Printf("%s is inside the window\n", statement.FormatDate(day))
		return
	}
	fmt.Printf("%s is outside the window\n", statement.FormatDate(day))
	os.Exit(1)
}

func runFixture(log zerolog.Logger, cfg config.Config) {
	fs := flag.NewFlagSet("fixture", flag.ExitOnError)
	name := fs.String("name", "", "Fixture name: complaint, loan or cheque")
	dir := fs.String("dir", cfg.FixturesDir, "Local fixture override directory")
	gcsURI := fs.String("gcs-uri", cfg.FixturesGCSURI, "gs:// fixture override prefix")
	fs.Parse(os.Args[2:])

	if *name == "" {
		log.Fatal().Msg("Error: -name is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	override, closeOverride, err := fixtures.OpenOverride(ctx, *dir, *gcsURI, cfg.GCSEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open fixture source")
	}
	defer closeOverride()

	store, err := fixtures.Load(ctx, override)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load fixtures")
	}

	doc, ok := store.Get(fixtures.Name(*name))
	if !ok {
		log.Fatal().Str("name", *name).Msg("Unknown fixture")
	}

	var out bytes.Buffer
	if err := json.Indent(&out, doc, "", "  "); err != nil {
		log.Fatal().Err(err).Msg("Fixture is not valid JSON")
	}
	out.WriteByte('\n')
	out.WriteTo(os.Stdout)
}

func printJSON(log zerolog.Logger, v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode output")
	}
}
