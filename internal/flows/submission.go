package flows

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/request-flows/internal/application"
	"github.com/DanielPopoola/request-flows/internal/config"
	"github.com/DanielPopoola/request-flows/internal/domain"
	"github.com/DanielPopoola/request-flows/internal/presenter"
)

const SubmissionFlow = "submission"

func SubmissionRequestConfig(cfg config.SubmitConfig) domain.RequestConfig {
	return domain.RequestConfig{
		URL:                cfg.URL,
		Method:             http.MethodPost,
		Headers:            domain.JSONHeaders(),
		BuildBody:          domain.NewSubmissionRequest,
		StatusErrorMessage: cfg.StatusErrorMessage,
	}
}

// Submission validates the form and posts it.
type Submission struct {
	controller *application.Controller[domain.CreatedResource]
	cfg        domain.RequestConfig
	logger     *slog.Logger
}

func NewSubmission(
	transport application.Transport,
	cfg domain.RequestConfig,
	recorder application.Recorder,
	logger *slog.Logger,
) *Submission {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submission{
		controller: application.NewController[domain.CreatedResource](SubmissionFlow, transport, recorder, logger,
			application.WithPayloadCheck(domain.ValidateCreatedResource)),
		cfg:        cfg,
		logger:     logger.With("flow", SubmissionFlow),
	}
}

// Submit validates input and, when valid, posts it. An invalid form fails
// the flow immediately without a request. input is copied; the caller
// keeps ownership of its form.
func (f *Submission) Submit(ctx context.Context, input domain.FormInput) domain.ValidationResult {
	result := domain.Validate(input)
	if !result.IsValid() {
		f.logger.Debug("submission rejected by validation")
		f.controller.Reject(domain.ValidationError(result))
		return result
	}

	var body any
	if f.cfg.BuildBody != nil {
		var err error
		body, err = f.cfg.BuildBody(input)
		if err != nil {
			f.controller.Reject(domain.NewEncodeError(err))
			return result
		}
	}

	f.controller.Start(ctx, f.cfg, body)
	return result
}

// View shows nothing until the first submit, then the outcome.
func (f *Submission) View() presenter.Intent {
	return presenter.Present(f.controller.CurrentState(), presenter.IdleAsNothing, presenter.SubmissionConfirmation)
}

// SubmitEnabled is false while a submission is in flight.
func (f *Submission) SubmitEnabled() bool {
	return !domain.IsLoading(f.controller.CurrentState())
}

func (f *Submission) State() domain.RequestState[domain.CreatedResource] {
	return f.controller.CurrentState()
}

func (f *Submission) Subscribe(fn func(domain.RequestState[domain.CreatedResource])) func() {
	return f.controller.Subscribe(fn)
}

func (f *Submission) Wait() {
	f.controller.Wait()
}

func (f *Submission) Close() {
	f.controller.Close()
}
