package flows

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/DanielPopoola/request-flows/internal/application"
	"github.com/DanielPopoola/request-flows/internal/config"
	"github.com/DanielPopoola/request-flows/internal/domain"
	"github.com/DanielPopoola/request-flows/internal/presenter"
)

const CoffeeListFlow = "coffee_list"

// CoffeeRequestConfig builds the read request. The token goes out as a
// static bearer credential.
func CoffeeRequestConfig(cfg config.CoffeeConfig) domain.RequestConfig {
	return domain.RequestConfig{
		URL:                cfg.URL,
		Method:             http.MethodGet,
		Headers:            domain.BearerHeaders(cfg.Token),
		StatusErrorMessage: cfg.StatusErrorMessage,
	}
}

// CoffeeList fetches the coffee list when mounted and renders it.
type CoffeeList struct {
	controller *application.Controller[[]domain.Coffee]
	logger     *slog.Logger

	mu         sync.Mutex
	cfg        domain.RequestConfig
	mountedKey string
}

func NewCoffeeList(
	transport application.Transport,
	cfg domain.RequestConfig,
	recorder application.Recorder,
	logger *slog.Logger,
) *CoffeeList {
	if logger == nil {
		logger = slog.Default()
	}
	return &CoffeeList{
		controller: application.NewController[[]domain.Coffee](CoffeeListFlow, transport, recorder, logger,
			application.WithPayloadCheck(domain.ValidateCoffees)),
		logger:     logger.With("flow", CoffeeListFlow),
		cfg:        cfg,
	}
}

// Mount starts the fetch. It fires once per configuration; mounting again
// with an unchanged configuration does nothing. It reports whether a
// request was started.
func (f *CoffeeList) Mount(ctx context.Context) bool {
	f.mu.Lock()
	cfg := f.cfg
	key := cfg.Key()
	if key == f.mountedKey {
		f.mu.Unlock()
		return false
	}
	f.mountedKey = key
	f.mu.Unlock()

	f.logger.Debug("mount triggered fetch", "url", cfg.URL)
	f.controller.Start(ctx, cfg, nil)
	return true
}

// Reconfigure replaces the request configuration. A different
// configuration re-arms Mount.
func (f *CoffeeList) Reconfigure(cfg domain.RequestConfig) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg = cfg
}

// View is the list rendering: title and description per coffee.
func (f *CoffeeList) View() presenter.Intent {
	return presenter.Present(f.controller.CurrentState(), presenter.IdleAsLoading, presenter.CoffeeCards)
}

// RawView dumps the decoded list as indented JSON.
func (f *CoffeeList) RawView() presenter.Intent {
	return presenter.Present(f.controller.CurrentState(), presenter.IdleAsLoading, presenter.JSONDump[[]domain.Coffee])
}

func (f *CoffeeList) State() domain.RequestState[[]domain.Coffee] {
	return f.controller.CurrentState()
}

func (f *CoffeeList) Subscribe(fn func(domain.RequestState[[]domain.Coffee])) func() {
	return f.controller.Subscribe(fn)
}

func (f *CoffeeList) Wait() {
	f.controller.Wait()
}

// Close is the unmount: late completions are dropped.
func (f *CoffeeList) Close() {
	f.controller.Close()
}
