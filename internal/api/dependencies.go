package api

import (
	"github.com/redis/go-redis/v9"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/config"
	"havahills/backoffice/internal/db"
	"havahills/backoffice/internal/db/repositories"
	"havahills/backoffice/internal/logging"
	"havahills/backoffice/internal/metrics"
	"havahills/backoffice/internal/providers"
	"havahills/backoffice/internal/realtime"
	"havahills/backoffice/internal/services"
)

type Repositories struct {
	Ticket *repositories.TicketRepository
	Chat   *repositories.ChatRepository
}

type Services struct {
	Cache     common.CacheInterface
	Session   *common.SessionService
	Signer    *common.ShareLinkSigner
	Notifier  *realtime.ChangeNotifier
	Auth      *services.AuthService
	Inventory *services.InventoryService
	Clients   *services.ClientService
	Payments  *services.PaymentService
	Dashboard *services.DashboardService
	Documents *services.DocumentService
	Tickets   *services.TicketService
	Chat      *services.ChatService
	Import    *services.ImportService
}

type Dependencies struct {
	Cfg      *config.Config
	Repo     *Repositories
	Services *Services
}

func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry, redisClient *redis.Client) (*Dependencies, error) {

	repos := &Repositories{
		Ticket: repositories.NewTicketRepository(db.DB),
		Chat:   repositories.NewChatRepository(db.PgDB),
	}

	dataProvider := providers.NewRestProvider(cfg.DataServiceURL, cfg.DataServiceKey)
	authProvider := providers.NewRestAuthProvider(cfg.DataServiceURL, cfg.DataServiceKey)
	storageProvider := providers.NewRestStorageProvider(cfg.DataServiceURL, cfg.DataServiceKey)

	// Redis cache when available, in-memory otherwise
	var cacheSvc common.CacheInterface
	if redisCache, err := common.NewRedisCacheService(redisClient); err == nil {
		cacheSvc = redisCache
	} else {
		logging.Warn("Redis cache unavailable, using in-memory cache", "error", err.Error())
		cacheSvc = common.NewCacheService(300, 600)
	}

	sessionSvc := common.NewSessionService(redisClient)
	signer := common.NewShareLinkSigner([]byte(cfg.ShareLinkSecret), redisClient)
	notifier := realtime.NewChangeNotifier(redisClient)

	inventorySvc := services.NewInventoryService(dataProvider, notifier, metricsReg)
	clientSvc := services.NewClientService(dataProvider)

	svcs := &Services{
		Cache:     cacheSvc,
		Session:   sessionSvc,
		Signer:    signer,
		Notifier:  notifier,
		Auth:      services.NewAuthService(authProvider, dataProvider, sessionSvc, cfg),
		Inventory: inventorySvc,
		Clients:   clientSvc,
		Payments:  services.NewPaymentService(dataProvider, notifier),
		Dashboard: services.NewDashboardService(inventorySvc, cacheSvc),
		Documents: services.NewDocumentService(dataProvider, storageProvider, clientSvc, signer, cacheSvc, metricsReg),
		Tickets:   services.NewTicketService(repos.Ticket),
		Chat:      services.NewChatService(repos.Chat),
		Import:    services.NewImportService(dataProvider, notifier, metricsReg),
	}

	return &Dependencies{
		Cfg:      cfg,
		Repo:     repos,
		Services: svcs,
	}, nil

}
