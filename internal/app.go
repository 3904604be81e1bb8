package internal

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"caribcart-client/internal/adapters/gateway_api_client"
	"caribcart-client/internal/adapters/identity_api_client"
	logger_adapter "caribcart-client/internal/adapters/logger"
	"caribcart-client/internal/adapters/tui"
	"caribcart-client/internal/configs"
	"caribcart-client/internal/core/port"
	"caribcart-client/internal/core/state"
	"caribcart-client/internal/core/usecase"
	"caribcart-client/internal/currency"
	"caribcart-client/internal/fluentlogger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fluent/fluent-logger-golang/fluent"
)

type App struct {
	config  *configs.AppConfig
	program *tea.Program

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	var activeLoggers []port.LoggerPort

	// The terminal itself belongs to the UI, so the stdout logger writes to
	// stderr. Redirect it to a file to read logs alongside a running session.
	slogCfg := logger_adapter.SlogConfig{
		Writer:   os.Stderr,
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: false,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	identityClient := identity_api_client.NewClient(
		appConfig.Identity.BaseURL,
		appConfig.Identity.SessionID,
		appConfig.Identity.SessionKey,
	)
	gatewayClient := gateway_api_client.NewClient(appConfig.Gateway.BaseURL)
	appLogger.Info("All service adapters initialized.", nil)

	store := state.NewStore(gatewayClient, identityClient, baseLogger)

	notifier := tui.NewNotifier()
	confirmGate := tui.NewConfirmGate()

	saveListingUseCase := usecase.NewSaveListingUseCase(gatewayClient, identityClient, store, notifier)
	submitCredentialsUseCase := usecase.NewSubmitCredentialsUseCase(gatewayClient, identityClient, store, notifier, confirmGate)
	withdrawUseCase := usecase.NewWithdrawUseCase(gatewayClient, identityClient, store, notifier, confirmGate)
	refreshListingsUseCase := usecase.NewRefreshListingsUseCase(store)

	userCountry := currency.UserCountry(appConfig.Country)
	appLogger.Info("Marketplace client configured.", port.Fields{"country": userCountry})

	model := tui.NewModel(tui.Deps{
		Store:       store,
		SaveListing: saveListingUseCase,
		Credentials: submitCredentialsUseCase,
		Withdraw:    withdrawUseCase,
		Refresh:     refreshListingsUseCase,
		Notifier:    notifier,
		ConfirmGate: confirmGate,
		Logger:      baseLogger,
		UserCountry: userCountry,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())

	application := &App{
		config:  appConfig,
		program: program,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run drives the UI until the user quits, then releases the logging
// resources.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Application shut down.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	if _, err := a.program.Run(); err != nil {
		a.logger.Error("Terminal UI exited with an error", err, nil)
		return err
	}
	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
