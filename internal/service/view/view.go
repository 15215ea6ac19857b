package view

import (
	"context"
	"sync"

	"deliveryhub/internal/entities"
	"deliveryhub/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentLookups = 8

// Builder enriches requests and applications with display data of the
// parties. A failed lookup leaves the party nil and never fails the call.
type Builder struct {
	directory UserDirectory
	log       builderLogger
}

func New(directory UserDirectory, log builderLogger) *Builder {
	return &Builder{
		directory: directory,
		log:       log,
	}
}

func (b *Builder) Request(ctx context.Context, request *entities.DeliveryRequest) *entities.DeliveryRequestView {
	views := b.Requests(ctx, []entities.DeliveryRequest{*request})
	return &views[0]
}

func (b *Builder) Requests(ctx context.Context, requests []entities.DeliveryRequest) []entities.DeliveryRequestView {
	ids := make([]uuid.UUID, 0, len(requests)*2)
	for i := range requests {
		ids = append(ids, requests[i].CustomerID)
		if requests[i].TransporterID != nil {
			ids = append(ids, *requests[i].TransporterID)
		}
	}
	users := b.lookup(ctx, ids)

	views := make([]entities.DeliveryRequestView, 0, len(requests))
	for i := range requests {
		v := entities.DeliveryRequestView{
			DeliveryRequest: requests[i],
			Customer:        users[requests[i].CustomerID],
		}
		if requests[i].TransporterID != nil {
			v.Transporter = users[*requests[i].TransporterID]
		}
		views = append(views, v)
	}
	return views
}

// Applications pairs every application with its transporter and the given
// aggregate stats.
func (b *Builder) Applications(
	ctx context.Context,
	applications []entities.DeliveryApplication,
	stats map[uuid.UUID]entities.TransporterStats,
) []entities.ApplicationView {
	ids := make([]uuid.UUID, 0, len(applications))
	for i := range applications {
		ids = append(ids, applications[i].TransporterID)
	}
	users := b.lookup(ctx, ids)

	views := make([]entities.ApplicationView, 0, len(applications))
	for i := range applications {
		transporterID := applications[i].TransporterID
		st, ok := stats[transporterID]
		if !ok {
			st = entities.TransporterStats{TransporterID: transporterID}
		}
		views = append(views, entities.ApplicationView{
			DeliveryApplication: applications[i],
			Transporter:         users[transporterID],
			Stats:               st,
		})
	}
	return views
}

func (b *Builder) lookup(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]*entities.UserInfo {
	users := make(map[uuid.UUID]*entities.UserInfo, len(ids))
	if b.directory == nil {
		return users
	}

	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for id := range unique {
		g.Go(func() error {
			user, err := b.directory.GetUser(gctx, id)
			if err != nil {
				b.log.Warn("user lookup failed",
					logger.NewField("user_id", id.String()),
					logger.ErrorField(err),
				)
				return nil
			}

			mu.Lock()
			users[id] = user
			mu.Unlock()
			return nil
		})
	}

	// lookups never return errors
	_ = g.Wait()
	return users
}
