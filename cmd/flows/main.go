package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanielPopoola/request-flows/internal/config"
	"github.com/DanielPopoola/request-flows/internal/domain"
	"github.com/DanielPopoola/request-flows/internal/flows"
	"github.com/DanielPopoola/request-flows/internal/infrastructure/httpclient"
	"github.com/DanielPopoola/request-flows/internal/infrastructure/metrics"
	"github.com/DanielPopoola/request-flows/internal/presenter"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	raw := flag.Bool("raw", false, "print the coffee list as JSON")
	name := flag.String("name", "", "name to submit")
	email := flag.String("email", "", "email to submit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting request flows",
		"env", cfg.Primary.Env,
		"log_level", cfg.Logger.Level,
	)

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(cfg.Metrics.Namespace, registry)
	if err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	transport := httpclient.NewClient(cfg.HTTPClient)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	list := flows.NewCoffeeList(transport, flows.CoffeeRequestConfig(cfg.Coffee), recorder, logger)
	defer list.Close()

	listView := list.View
	if *raw {
		listView = list.RawView
	}
	list.Subscribe(func(domain.RequestState[[]domain.Coffee]) {
		fmt.Println(presenter.ListText.Render(listView()))
	})
	list.Mount(ctx)
	list.Wait()

	if *name != "" || *email != "" {
		form := flows.NewSubmission(transport, flows.SubmissionRequestConfig(cfg.Submit), recorder, logger)
		defer form.Close()

		form.Subscribe(func(domain.RequestState[domain.CreatedResource]) {
			fmt.Println(presenter.SubmitText.Render(form.View()))
		})
		form.Submit(ctx, domain.FormInput{Name: *name, Email: *email})
		form.Wait()
	}

	if cfg.Metrics.TextfilePath != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath, registry); err != nil {
			logger.Error("failed to write metrics", "path", cfg.Metrics.TextfilePath, "error", err)
		}
	}

	logger.Info("request flows exited")
}
