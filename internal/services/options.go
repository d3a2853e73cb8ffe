package services

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	catalogcontracts "github.com/light-bringer/farmlink-service/internal/app/catalog/contracts"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/get_facets"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/get_farmer"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/list_farmers"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/quote_cart"
	catalogrepo "github.com/light-bringer/farmlink-service/internal/app/catalog/repo"
	"github.com/light-bringer/farmlink-service/internal/app/chat/contracts"
	"github.com/light-bringer/farmlink-service/internal/app/chat/notify"
	"github.com/light-bringer/farmlink-service/internal/app/chat/queries/list_conversations"
	"github.com/light-bringer/farmlink-service/internal/app/chat/queries/list_messages"
	chatrepo "github.com/light-bringer/farmlink-service/internal/app/chat/repo"
	"github.com/light-bringer/farmlink-service/internal/app/chat/usecases/post_message"
	"github.com/light-bringer/farmlink-service/internal/config"
	"github.com/light-bringer/farmlink-service/internal/pkg/clock"
	transport "github.com/light-bringer/farmlink-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Router *http.ServeMux

	spannerClient *spanner.Client
	mongoStore    *chatrepo.MongoTranscriptStore
	natsNotifier  *notify.NATSNotifier
}

// NewServiceOptions creates and wires up all application dependencies.
// The catalog is loaded once from the configured provider and served as
// an immutable snapshot for the life of the process.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	opts := &ServiceOptions{}

	// 1. Catalog provider and snapshot
	catalog, err := opts.buildCatalog(ctx, cfg)
	if err != nil {
		opts.Close(ctx)
		return nil, err
	}
	logger.Info("catalog snapshot loaded",
		zap.Int("products", len(catalog.Products)),
		zap.String("backend", cfg.Catalog.Backend),
	)

	// 2. Chat transcript store and notifier
	store, err := opts.buildTranscriptStore(ctx, cfg)
	if err != nil {
		opts.Close(ctx)
		return nil, err
	}
	notifier, err := opts.buildNotifier(cfg, logger)
	if err != nil {
		opts.Close(ctx)
		return nil, err
	}

	clk := clock.NewRealClock()

	// 3. Query and command use cases
	listProductsQuery := list_products.NewQuery(catalog)
	getProductQuery := get_product.NewQuery(catalog)
	getFacetsQuery := get_facets.NewQuery(catalog)
	listFarmersQuery := list_farmers.NewQuery(catalog)
	getFarmerQuery := get_farmer.NewQuery(catalog)
	quoteCartQuery := quote_cart.NewQuery(catalog)
	postMessageUseCase := post_message.NewInteractor(store, notifier, clk, logger)
	listMessagesQuery := list_messages.NewQuery(store)
	listConversationsQuery := list_conversations.NewQuery(store)

	// 4. HTTP handlers and router
	catalogHandler := transport.NewCatalogHandler(listProductsQuery, getProductQuery, getFacetsQuery, logger)
	farmerHandler := transport.NewFarmerHandler(listFarmersQuery, getFarmerQuery, logger)
	cartHandler := transport.NewCartHandler(quoteCartQuery, logger)
	chatHandler := transport.NewChatHandler(postMessageUseCase, listMessagesQuery, listConversationsQuery, logger)

	opts.Router = transport.NewRouter(catalogHandler, farmerHandler, cartHandler, chatHandler, logger)
	return opts, nil
}

func (s *ServiceOptions) buildCatalog(ctx context.Context, cfg *config.Config) (*domain.Catalog, error) {
	var provider catalogcontracts.CatalogProvider = catalogrepo.NewFixtureCatalog()
	if cfg.Catalog.Backend == config.CatalogBackendSpanner {
		client, err := spanner.NewClient(ctx, cfg.Catalog.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		s.spannerClient = client
		provider = catalogrepo.NewSpannerCatalog(client)
	}

	products, err := provider.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	farmers, err := provider.ListFarmers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load farmers: %w", err)
	}
	return domain.BuildCatalog(products, farmers), nil
}

func (s *ServiceOptions) buildTranscriptStore(ctx context.Context, cfg *config.Config) (contracts.TranscriptStore, error) {
	if cfg.Chat.Backend == config.ChatBackendMongo {
		store, err := chatrepo.NewMongoTranscriptStore(ctx, cfg.Chat.MongoURI, cfg.Chat.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to create Mongo transcript store: %w", err)
		}
		s.mongoStore = store
		return store, nil
	}
	return chatrepo.NewMemoryTranscriptStore(), nil
}

func (s *ServiceOptions) buildNotifier(cfg *config.Config, logger *zap.Logger) (contracts.Notifier, error) {
	if cfg.Chat.NATSURL == "" {
		logger.Info("chat notifications disabled, no NATS URL configured")
		return notify.NoopNotifier{}, nil
	}
	notifier, err := notify.NewNATSNotifier(cfg.Chat.NATSURL, cfg.Chat.NATSSubject)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	s.natsNotifier = notifier
	return notifier, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close(ctx context.Context) {
	if s.natsNotifier != nil {
		s.natsNotifier.Close()
	}
	if s.mongoStore != nil {
		_ = s.mongoStore.Close(ctx)
	}
	if s.spannerClient != nil {
		s.spannerClient.Close()
	}
}
