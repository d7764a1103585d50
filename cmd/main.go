package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ExoTV1102/Ticketsystem/internal/config"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/application"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/infrastructure"
	pkgApp "github.com/ExoTV1102/Ticketsystem/pkg/application"
	pkgDomain "github.com/ExoTV1102/Ticketsystem/pkg/domain"
	pkgInfra "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure"
	zapAdapter "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure/zaplogger/adapter"
)

const appName = "ticketsystem"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	appLogger, err := zapAdapter.NewZapAppLogger(appName, settings.Log.Level)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := infrastructure.OpenTicketStore(settings.Database, appLogger)
	if err != nil {
		pkgApp.LogError(ctx, appLogger, "Erro ao abrir o armazenamento", err, map[string]interface{}{
			"database_type": settings.Database.Type,
		})
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			pkgApp.LogError(context.Background(), appLogger, "Erro ao fechar o armazenamento", err, nil)
		}
	}()

	if err := infrastructure.Migrate(ctx, store, infrastructure.DefaultSeed, appLogger); err != nil {
		pkgApp.LogError(ctx, appLogger, "Erro ao inicializar o banco", err, nil)
		return err
	}

	eventBus, closeEvents, err := infrastructure.NewBookingEventBus(ctx, settings.Events, appLogger)
	if err != nil {
		pkgApp.LogError(ctx, appLogger, "Erro ao criar o barramento de eventos", err, map[string]interface{}{
			"transport": settings.Events.Transport,
		})
		return err
	}
	defer func() {
		if err := closeEvents(); err != nil {
			pkgApp.LogError(context.Background(), appLogger, "Erro ao encerrar o barramento de eventos", err, nil)
		}
	}()

	buses := application.Buses{
		Stations:    pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.ListStationsData], application.ListStationsData, []domain.Station](appLogger),
		Connections: pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindDirectConnectionsData], application.FindDirectConnectionsData, []domain.ConnectionDetails](appLogger),
		Bookings:    pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.ListBookingsData], application.ListBookingsData, []domain.BookingDetails](appLogger),
		Commands:    pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateBookingData], application.CreateBookingData, domain.Booking](appLogger),
		Events:      eventBus,
	}

	ticketingSlice := ticketing.NewTicketingSlice(buses, store, store, time.Now, settings.HTTP.RequestTimeout, appLogger)

	router := newRouter(settings.HTTP, ticketingSlice)

	serverAddress := fmt.Sprintf(":%d", settings.Port)
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info(ctx, "Server starting on:"+serverAddress, nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		appLogger.Info(context.Background(), "Sinal capturado", nil)
	case err := <-serverErr:
		if err != nil {
			pkgApp.LogError(context.Background(), appLogger, "Erro ao iniciar o servidor", err, nil)
			return err
		}
	}

	appLogger.Info(context.Background(), "Encerrando servidor...", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		pkgApp.LogError(context.Background(), appLogger, "Erro ao encerrar servidor", err, nil)
	}

	appLogger.Info(context.Background(), "Servidor encerrado", nil)
	return nil
}
