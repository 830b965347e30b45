// Command seedpages loads the default CMS pages into MongoDB.
//
// Pages that already exist are left untouched unless -overwrite is given.
// A custom page set can be supplied with -file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/njrexim/cms-api/internal/core/ports"
	"github.com/njrexim/cms-api/internal/core/service"
	"github.com/njrexim/cms-api/internal/infrastructure/config"
	"github.com/njrexim/cms-api/internal/infrastructure/db/mongo"
	"github.com/njrexim/cms-api/internal/infrastructure/seed"
	"github.com/njrexim/cms-api/pkg/logger"
)

func main() {
	overwrite := flag.Bool("overwrite", false, "replace title, content and active flag of pages that already exist")
	file := flag.String("file", "", "JSON file with the pages to load (defaults to the built-in set)")
	flag.Parse()

	if err := run(*file, *overwrite); err != nil {
		fmt.Fprintf(os.Stderr, "seedpages: %v\n", err)
		os.Exit(1)
	}
}

func run(file string, overwrite bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadTool(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "seedpages",
	})

	pages, err := loadPages(file)
	if err != nil {
		return err
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	pageSvc := service.NewPageService(mongo.NewPageRepository(db), logger.Component("pages"))
	res, err := pageSvc.Seed(ctx, pages, overwrite)
	if err != nil {
		return err
	}

	log.Info().
		Str("created", strings.Join(res.Created, ",")).
		Str("updated", strings.Join(res.Updated, ",")).
		Str("skipped", strings.Join(res.Skipped, ",")).
		Msg("done")
	return nil
}

func loadPages(file string) ([]ports.PageInput, error) {
	if file == "" {
		return seed.DefaultPages()
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open pages file: %w", err)
	}
	defer f.Close()
	return seed.ReadPages(f)
}
