package app

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/Astemirdum/library-catalog/catalog/internal/handler"
	"github.com/Astemirdum/library-catalog/catalog/internal/presenter"
	"github.com/Astemirdum/library-catalog/catalog/internal/server"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "catalog")
	defer log.Sync() //nolint:errcheck

	events, closeEvents, err := newEventLog(cfg.Kafka, log)
	if err != nil {
		return errors.Wrap(err, "kafka init")
	}
	defer closeEvents()

	var out io.Writer = io.Discard
	if cfg.PrintOutcomes {
		out = os.Stdout
	}
	svc := presenter.New(service.NewCatalog(log), out, log)
	h := handler.New(svc, events, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server run", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

func newEventLog(cfg kafka.Config, log *zap.Logger) (handler.EventLog, func(), error) {
	if len(cfg.Addrs) == 0 {
		log.Info("kafka brokers are not configured, reservation events are dropped")
		return kafka.Nop{}, func() {}, nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, nil, err
	}
	const (
		recordLength     = 20
		openTimeout      = 30 * time.Second
		percentile       = 0.5
		recoveryRequests = 3
	)
	cb := circuit_breaker.New(recordLength, openTimeout, percentile, recoveryRequests)
	closeFn := func() {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	return kafka.NewEventLog(producer, cfg.Topic, cb), closeFn, nil
}
