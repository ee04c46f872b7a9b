package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/qrpay/internal/config"
	"github.com/fsdevblog/qrpay/internal/metrics"
	"github.com/fsdevblog/qrpay/internal/repository/pgrepo"
	"github.com/fsdevblog/qrpay/internal/repository/repoargs"
	"github.com/fsdevblog/qrpay/internal/service"
	"github.com/fsdevblog/qrpay/internal/transport/api"
	"github.com/fsdevblog/qrpay/internal/transport/reconcile"
	"github.com/fsdevblog/qrpay/internal/transport/webhook"
	"github.com/fsdevblog/qrpay/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	reconcileLimit    = 100
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает HTTP сервер и сверку заказов и ждет сигнала завершения. После SIGINT/SIGTERM
// возвращает context.Canceled.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		StorageTimeout: a.Config.StorageTimeout,
		Merchant: service.MerchantSettings{
			UPIID: a.Config.MerchantUPI,
			Name:  a.Config.MerchantName,
		},
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	appMetrics := metrics.New()

	router, rErr := api.New(api.RouterArgs{
		Logger:           a.Logger,
		Metrics:          appMetrics,
		Webhook:          webhook.NewRouter(services.LedgerService, a.Config.WebhookSecret, appMetrics, a.Logger),
		AnalyticsService: services.AnalyticsService,
		IntentService:    services.IntentService,
		ReconcileService: services.LedgerService,
		JWTSecretKey:     []byte(a.Config.DashboardJWTSecret),
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	processor := reconcile.New(services.LedgerService, appMetrics, a.Logger).
		SetLimitPerIteration(reconcileLimit).
		SetInterval(a.Config.ReconcileInterval).
		SetGrace(a.Config.ReconcileGrace)

	g, gCtx := errgroup.WithContext(notifyCtx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		processor.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return gCtx.Err() //nolint:wrapcheck
	})

	return g.Wait() //nolint:wrapcheck
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := []struct {
		name    repoargs.RepositoryName
		factory uow.RepositoryFactory
	}{
		{
			name:    repoargs.PaymentRepoName,
			factory: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPaymentRepository(dbtx) },
		}, {
			name:    repoargs.OrderRepoName,
			factory: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewOrderRepository(dbtx) },
		}, {
			name:    repoargs.CatalogRepoName,
			factory: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewCatalogRepository(dbtx) },
		}, {
			name:    repoargs.AnalyticsRepoName,
			factory: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewAnalyticsRepository(dbtx) },
		},
	}

	for _, f := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(f.name), f.factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
