package mongosink

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brigadas-forestales/internal/domain/auditlog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DefaultDatabase   = "historial_ideam"
	DefaultCollection = "historial"
)

type Config struct {
	URI        string
	Database   string
	Collection string
}

// Sink guarda cada entrada del historial como un documento.
type Sink struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Open conecta y verifica el servidor con un ping.
func Open(ctx context.Context, cfg Config) (*Sink, error) {
	if strings.TrimSpace(cfg.URI) == "" {
		return nil, errors.New("mongosink: uri required")
	}
	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongosink: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongosink: ping: %w", err)
	}

	return &Sink{client: client, coll: client.Database(cfg.Database).Collection(cfg.Collection)}, nil
}

// New usa una colección ya abierta; Close no desconecta el cliente.
func New(coll *mongo.Collection) *Sink {
	return &Sink{coll: coll}
}

func (s *Sink) Write(ctx context.Context, e auditlog.Entry) error {
	_, err := s.coll.InsertOne(ctx, e)
	return err
}

func (s *Sink) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
