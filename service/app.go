package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloggers/app/config"
	"bloggers/app/repositories"
	"bloggers/app/routes"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// RunAppServer starts the bloggers API and blocks until SIGINT or SIGTERM.
func RunAppServer(args []string) error {
	cfg, err := config.FromArgs(args, os.Stderr)
	if err != nil {
		return err
	}
	if err := cfg.ConfigureLogging(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return serve(ctx, cfg, ln)
}

// serve runs the API on ln until ctx is done, then shuts the server down
// gracefully.
func serve(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	repo, err := repositories.NewRepository()
	if err != nil {
		ln.Close()
		return err
	}
	defer repo.Close()

	if cfg.Seed {
		if err := repo.SeedDefaults(); err != nil {
			ln.Close()
			return err
		}
		log.Info("[server] loaded sample bloggers and posts")
	}

	opts := routes.Options{ServiceName: cfg.ServiceName}
	if cfg.AccessLogEnabled() {
		kafkaWriter := newAccessLogWriter(cfg.AccessLog)
		defer func() {
			if err := kafkaWriter.Close(); err != nil {
				log.Errorf("[server] failed to close Kafka writer: %v", err)
			}
		}()
		opts.AccessLog = kafkaWriter
	} else {
		log.Warn("[server] kafka was not configured, access logs will not be sent to Kafka")
	}

	srv := &http.Server{
		Handler:           routes.Handler(routes.SetupRoutes(repo.Bloggers, repo.Posts), opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("[server] starting on %v", ln.Addr())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownRelease()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("[server] HTTP server shutdown error: %v", err)
		return err
	}
	log.Info("[server] HTTP server shut down gracefully")
	return nil
}

func newAccessLogWriter(cfg config.AccessLog) *kafka.Writer {
	w := &kafka.Writer{
		Addr:      kafka.TCP(cfg.KafkaBrokers...),
		Topic:     cfg.KafkaTopic,
		Balancer:  &kafka.LeastBytes{},
		BatchSize: cfg.KafkaBatch,
	}
	if err := createTopic(cfg.KafkaBrokers[0], cfg.KafkaTopic); err != nil {
		log.Warnf("[server] failed to create Kafka topic: %v", err)
	}
	return w
}

func createTopic(broker, topic string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
}
