package service

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/beaconhq/beacon-backend/internal/response"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventService handles scheduled program entries.
type EventService struct {
	eventRepo *repository.EventRepository
	log       zerolog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo *repository.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		log:       log.With().Str("component", "event_service").Logger(),
	}
}

// GetByID retrieves an event by its UUID.
func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// List retrieves events with pagination, soonest first.
func (s *EventService) List(ctx context.Context, page, perPage int) ([]model.Event, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	events, total, err := s.eventRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if events == nil {
		events = []model.Event{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return events, pagination, nil
}

// Create inserts a new event as a draft.
func (s *EventService) Create(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", event.ID.String()).Msg("Event created")
	return event, nil
}

// Update applies a partial update to an event.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateEventRequest) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}
	if req.IsPublished != nil {
		event.IsPublished = *req.IsPublished
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("event_id", id.String()).Msg("Event deleted")
	return nil
}
