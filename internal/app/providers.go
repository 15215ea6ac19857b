package app

import (
	"context"
	"time"

	userGateway "deliveryhub/internal/gateway/grpc/user"
	lifecyclePublisher "deliveryhub/internal/gateway/kafka/lifecycle"
	"deliveryhub/internal/handlers/rest/application_accept_post"
	"deliveryhub/internal/handlers/rest/applications_my_get"
	"deliveryhub/internal/handlers/rest/deliveries_assigned_get"
	"deliveryhub/internal/handlers/rest/deliveries_available_get"
	"deliveryhub/internal/handlers/rest/deliveries_my_get"
	"deliveryhub/internal/handlers/rest/delivery_applications_get"
	"deliveryhub/internal/handlers/rest/delivery_apply_post"
	"deliveryhub/internal/handlers/rest/delivery_cancel_post"
	"deliveryhub/internal/handlers/rest/delivery_claim_post"
	"deliveryhub/internal/handlers/rest/delivery_decline_dismiss_put"
	"deliveryhub/internal/handlers/rest/delivery_decline_post"
	"deliveryhub/internal/handlers/rest/delivery_get"
	"deliveryhub/internal/handlers/rest/delivery_offer_accept_post"
	"deliveryhub/internal/handlers/rest/delivery_post"
	"deliveryhub/internal/handlers/rest/delivery_status_put"
	"deliveryhub/internal/handlers/rest/transporter_pricing_get"
	"deliveryhub/internal/handlers/rest/transporter_pricing_put"
	"deliveryhub/internal/handlers/tasks/offer_expiry"
	"deliveryhub/internal/pkg/config"
	applicationRepo "deliveryhub/internal/repository/delivery_application"
	requestRepo "deliveryhub/internal/repository/delivery_request"
	pricingRepo "deliveryhub/internal/repository/transporter_pricing"
	ratingRepo "deliveryhub/internal/repository/transporter_rating"
	"deliveryhub/internal/service/bidding"
	"deliveryhub/internal/service/lifecycle"
	"deliveryhub/internal/service/pricing"
	"deliveryhub/internal/service/rating"
	"deliveryhub/internal/service/view"
	"deliveryhub/pkg/background"
	"deliveryhub/pkg/clock"
	"deliveryhub/pkg/logger"
	"deliveryhub/pkg/querier"
	"deliveryhub/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

type StaleOffersInterval time.Duration

type Application struct {
	ServiceLifecycle  ServiceLifecycle
	ServiceBidding    ServiceBidding
	ServicePricing    ServicePricing
	BackgroundWorkers *background.Worker
}

type ServiceLifecycle interface {
	delivery_post.Service
	delivery_get.Service
	deliveries_my_get.Service
	deliveries_available_get.Service
	deliveries_assigned_get.Service
	delivery_claim_post.Service
	delivery_offer_accept_post.Service
	delivery_status_put.Service
	delivery_decline_post.Service
	delivery_decline_dismiss_put.Service
	delivery_cancel_post.Service
}

type ServiceBidding interface {
	delivery_apply_post.Service
	delivery_applications_get.Service
	application_accept_post.Service
	applications_my_get.Service
}

type ServicePricing interface {
	transporter_pricing_get.Service
	transporter_pricing_put.Service
}

// RatingWorkerApp is what cmd/worker-rating-changed needs: the rating
// projection, nothing from the request lifecycle.
type RatingWorkerApp struct {
	RatingService *rating.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock() *clock.RealClock {
	return clock.NewRealClock()
}

func provideRequestRepository(querier *querier.Querier) *requestRepo.Repository {
	return requestRepo.New(querier)
}

func provideApplicationRepository(querier *querier.Querier) *applicationRepo.Repository {
	return applicationRepo.New(querier)
}

func providePricingRepository(querier *querier.Querier) *pricingRepo.Repository {
	return pricingRepo.New(querier)
}

func provideRatingRepository(querier *querier.Querier) *ratingRepo.Repository {
	return ratingRepo.New(querier)
}

func providePricingOracle(repository pricing.Repository) *pricing.Oracle {
	return pricing.New(repository)
}

func providePricingService(repository pricing.TariffRepository) *pricing.Service {
	return pricing.NewService(repository)
}

func provideRatingService(repository rating.Repository) *rating.Service {
	return rating.New(repository)
}

func provideUserGateway(conn *grpc.ClientConn, cfg *config.Config) *userGateway.UserGateway {
	return userGateway.New(conn, cfg.UserDirectory.RequestTimeout)
}

func provideViewBuilder(directory view.UserDirectory, log logger.Logger) *view.Builder {
	return view.New(directory, log)
}

func provideLifecyclePublisher(producer sarama.SyncProducer, cfg *config.Config, log logger.Logger) *lifecyclePublisher.Publisher {
	return lifecyclePublisher.New(producer, cfg.Kafka.LifecycleTopic, log)
}

func provideLifecycleConfig(cfg *config.Config) lifecycle.Config {
	return lifecycle.Config{OfferTTL: cfg.Lifecycle.OfferTTL}
}

func provideServiceLifecycle(
	requests lifecycle.RequestRepository,
	applications lifecycle.ApplicationRepository,
	views lifecycle.ViewBuilder,
	events lifecycle.EventSink,
	txManager lifecycle.TxManager,
	clk clock.Clock,
	cfg lifecycle.Config,
) *lifecycle.Service {
	return lifecycle.New(requests, applications, views, events, txManager, clk, cfg)
}

func provideServiceBidding(
	requests bidding.RequestRepository,
	applications bidding.ApplicationRepository,
	pricingOracle bidding.PricingOracle,
	ratings bidding.RatingSource,
	views bidding.ViewBuilder,
	events bidding.EventSink,
	txManager bidding.TxManager,
	clk clock.Clock,
	log logger.Logger,
) *bidding.Service {
	return bidding.New(
		requests,
		applications,
		pricingOracle,
		ratings,
		views,
		events,
		txManager,
		clk,
		log,
	)
}

func provideStaleOffersInterval(cfg *config.Config) StaleOffersInterval {
	return StaleOffersInterval(cfg.Tasks.StaleOffersInterval)
}

func provideOfferExpiryTask(
	log logger.Logger,
	service offer_expiry.Service,
	interval StaleOffersInterval,
) *offer_expiry.OfferExpiry {
	return offer_expiry.NewOfferExpiry(log, service, time.Duration(interval))
}

func provideTaskList(
	offerExpiryTask *offer_expiry.OfferExpiry,
) []background.Task {
	return []background.Task{
		offerExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
