package usecase

import (
	"context"

	"fleet-maintenance/internal/converter"
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/reminder"
	"fleet-maintenance/internal/service"

	"github.com/sirupsen/logrus"
)

// ReminderProjectionUsecase computes virtual service reminders from the
// active schedules and their assigned vehicles. Nothing is persisted; every
// call reflects the current fleet configuration.
type ReminderProjectionUsecase interface {
	GetServiceReminders(ctx context.Context, query *dto.ReminderProjectionQuery) (*dto.ReminderProjectionPageResponse, error)
}

type reminderProjectionUsecase struct {
	log           *logrus.Logger
	engine        *reminder.Engine
	reminderCache *service.ReminderCacheService
}

func NewReminderProjectionUsecase(
	log *logrus.Logger,
	engine *reminder.Engine,
	reminderCache *service.ReminderCacheService,
) ReminderProjectionUsecase {
	return &reminderProjectionUsecase{
		log:           log,
		engine:        engine,
		reminderCache: reminderCache,
	}
}

func (u *reminderProjectionUsecase) GetServiceReminders(ctx context.Context, query *dto.ReminderProjectionQuery) (*dto.ReminderProjectionPageResponse, error) {
	projections, cached := u.reminderCache.GetProjections(ctx)
	if !cached {
		var err error
		projections, err = u.engine.Aggregate(ctx)
		if err != nil {
			u.log.Warnf("Failed to compute reminder projections: %+v", err)
			return nil, err
		}
		u.reminderCache.SetProjections(ctx, projections)
	}

	page := reminder.ApplyQuery(projections, reminder.QueryParams{
		Search:         query.Search,
		SortBy:         query.SortBy,
		SortDescending: query.SortDescending,
		PageNumber:     query.PageNumber,
		PageSize:       query.PageSize,
	})

	return converter.ProjectionPageToResponse(&page), nil
}
