package api

import (
	"database/sql"
	"net/http"

	"github.com/TWRT/form-integrations/internal/api/handlers"
	"github.com/TWRT/form-integrations/internal/client/aweber"
	"github.com/TWRT/form-integrations/internal/config"
	"github.com/TWRT/form-integrations/internal/i18n"
	"github.com/TWRT/form-integrations/internal/logging"
	"github.com/TWRT/form-integrations/internal/markup"
	"github.com/TWRT/form-integrations/internal/metrics"
	"github.com/TWRT/form-integrations/internal/repository"
	"github.com/TWRT/form-integrations/internal/service"
	"github.com/TWRT/form-integrations/internal/wizard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services wires the repositories, AWeber provider and wizard runner shared by the router and the CLI.
type Services struct {
	Runner      *wizard.Runner
	Integration *service.IntegrationService
}

func NewServices(db *sql.DB, cfg *config.Config, logger logging.Logger, m *metrics.IntegrationMetrics) *Services {
	accountRepo := repository.NewProviderAccountRepository(db)
	settingsRepo := repository.NewFormSettingsRepository(db)

	clientOpts := []aweber.Option{
		aweber.WithBaseURL(cfg.Aweber.BaseURL),
		aweber.WithHTTPClient(&http.Client{Timeout: cfg.Aweber.Timeout}),
	}
	provider := aweber.NewProvider(accountRepo, clientOpts...)
	fetcher := service.NewListFetcher(aweber.Slug, provider, logger, m)

	runner := wizard.NewRunner()
	runner.Register(aweber.Slug, service.NewAweberFactory(service.FormSettingsDeps{
		Store:      settingsRepo,
		Accounts:   accountRepo,
		Lists:      fetcher,
		Markup:     markup.NewHelper(),
		Translator: i18n.NewTranslator(cfg.Locale),
		Logger:     logger,
		Metrics:    m,
	}))

	integrationService := service.NewIntegrationService(
		accountRepo,
		fetcher,
		func(token string) service.AccountLookup {
			return aweber.NewAweberClient(token, clientOpts...)
		},
	)

	return &Services{
		Runner:      runner,
		Integration: integrationService,
	}
}

func SetupRouter(services *Services, logger logging.Logger, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	formHandler := handlers.NewFormIntegrationHandler(services.Runner, logger)
	accountHandler := handlers.NewAccountHandler(services.Integration)

	mux.HandleFunc("GET /forms/{formId}/integrations/{provider}", formHandler.GetIntegration)
	mux.HandleFunc("DELETE /forms/{formId}/integrations/{provider}", formHandler.Disconnect)
	mux.HandleFunc("POST /forms/{formId}/integrations/{provider}/steps/{step}", formHandler.RunStep)
	mux.HandleFunc("GET /forms/{formId}/integrations/{provider}/lists", formHandler.GetLists)
	mux.HandleFunc("PUT /forms/{formId}/integrations/{provider}/account", formHandler.SelectAccount)

	mux.HandleFunc("POST /providers/aweber/accounts", accountHandler.CreateAccount)
	mux.HandleFunc("GET /providers/aweber/accounts", accountHandler.ListAccounts)
	mux.HandleFunc("DELETE /providers/aweber/accounts/{id}", accountHandler.DeleteAccount)
	mux.HandleFunc("GET /providers/aweber/accounts/{id}/lists", accountHandler.GetAccountLists)

	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return mux
}
