//go:build wireinject
// +build wireinject

package app

import (
	"context"

	userGateway "deliveryhub/internal/gateway/grpc/user"
	lifecyclePublisher "deliveryhub/internal/gateway/kafka/lifecycle"
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
	"deliveryhub/pkg/clock"
	"deliveryhub/pkg/logger"
	"deliveryhub/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

// InitializeApplication builds the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,
		provideStaleOffersInterval,
		provideLifecycleConfig,

		provideRequestRepository,
		provideApplicationRepository,
		providePricingRepository,
		provideRatingRepository,

		providePricingOracle,
		providePricingService,
		provideRatingService,
		provideUserGateway,
		provideViewBuilder,
		provideLifecyclePublisher,

		provideServiceLifecycle,
		provideServiceBidding,

		provideOfferExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*lifecycle.Service)),
		wire.Bind(new(ServiceBidding), new(*bidding.Service)),
		wire.Bind(new(ServicePricing), new(*pricing.Service)),

		wire.Bind(new(clock.Clock), new(*clock.RealClock)),

		wire.Bind(new(lifecycle.RequestRepository), new(*requestRepo.Repository)),
		wire.Bind(new(lifecycle.ApplicationRepository), new(*applicationRepo.Repository)),
		wire.Bind(new(lifecycle.ViewBuilder), new(*view.Builder)),
		wire.Bind(new(lifecycle.EventSink), new(*lifecyclePublisher.Publisher)),
		wire.Bind(new(lifecycle.TxManager), new(*tx.Manager)),

		wire.Bind(new(bidding.RequestRepository), new(*requestRepo.Repository)),
		wire.Bind(new(bidding.ApplicationRepository), new(*applicationRepo.Repository)),
		wire.Bind(new(bidding.PricingOracle), new(*pricing.Oracle)),
		wire.Bind(new(bidding.RatingSource), new(*rating.Service)),
		wire.Bind(new(bidding.ViewBuilder), new(*view.Builder)),
		wire.Bind(new(bidding.EventSink), new(*lifecyclePublisher.Publisher)),
		wire.Bind(new(bidding.TxManager), new(*tx.Manager)),

		wire.Bind(new(pricing.Repository), new(*pricingRepo.Repository)),
		wire.Bind(new(pricing.TariffRepository), new(*pricingRepo.Repository)),
		wire.Bind(new(rating.Repository), new(*ratingRepo.Repository)),
		wire.Bind(new(view.UserDirectory), new(*userGateway.UserGateway)),

		wire.Bind(new(offer_expiry.Service), new(*lifecycle.Service)),
	)
	return &Application{}, nil
}

// InitializeRatingWorkerApp builds the rating projection for
// cmd/worker-rating-changed.
func InitializeRatingWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) *RatingWorkerApp {
	wire.Build(
		provideQuerier,
		provideRatingRepository,
		provideRatingService,

		wire.Bind(new(rating.Repository), new(*ratingRepo.Repository)),

		wire.Struct(new(RatingWorkerApp), "*"),
	)
	return nil
}
