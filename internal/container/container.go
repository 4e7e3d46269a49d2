package container

import (
	"context"
	"fmt"

	"marketplace/storefront/internal/cart"
	"marketplace/storefront/internal/catalog"
	"marketplace/storefront/internal/client"
	"marketplace/storefront/internal/config"
	"marketplace/storefront/internal/query"
	"marketplace/storefront/internal/storage"
	"marketplace/storefront/internal/view"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config      *config.Config
	Catalog     *catalog.Catalog
	Cart        *cart.Store
	Coordinator *view.Coordinator

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}
	ctx := context.Background()
	fs := afero.NewOsFs()

	cat, err := loadCatalog(ctx, cfg.Catalog, fs)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}
	c.Catalog = cat
	log.Infof("Loaded catalog with %d products in %d categories", cat.Len(), len(cat.Categories())-1)

	store, err := c.buildStorage(ctx, cfg.Storage, fs)
	if err != nil {
		return nil, err
	}

	c.Cart = cart.New(ctx, cat, store)
	if n := c.Cart.TotalCount(); n > 0 {
		log.Infof("Restored persisted cart with %d items", n)
	}

	c.Coordinator = view.NewCoordinator(cat, c.Cart, query.New())

	return c, nil
}

func loadCatalog(ctx context.Context, cfg config.CatalogConfig, fs afero.Fs) (*catalog.Catalog, error) {
	switch cfg.Source {
	case "http":
		products, err := client.NewMarketplaceClient(cfg).FetchProducts(ctx)
		if err != nil {
			return nil, err
		}
		return catalog.New(products), nil
	case "html":
		products, err := client.NewMarketplaceClient(cfg).FetchListing(ctx)
		if err != nil {
			return nil, err
		}
		return catalog.New(products), nil
	default:
		return catalog.FromFile(fs, cfg.Path)
	}
}

func (c *Container) buildStorage(ctx context.Context, cfg config.StorageConfig, fs afero.Fs) (storage.Store, error) {
	switch cfg.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("Connected to Redis successfully")
		c.redis = rdb
		return storage.NewRedisStore(rdb, cfg.Key), nil
	case "postgres":
		db, err := pgxpool.New(ctx, fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Postgres.Host,
			cfg.Postgres.Port,
			cfg.Postgres.User,
			cfg.Postgres.Password,
			cfg.Postgres.Name,
		))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		log.Info("Connected to Postgres successfully")
		c.db = db
		return storage.NewPostgresStore(db, cfg.Key), nil
	default:
		return storage.NewFileStore(fs, cfg.Path), nil
	}
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		c.redis.Close()
	}
	return nil
}
