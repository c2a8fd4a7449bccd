package service

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/beaconhq/beacon-backend/internal/response"
	"github.com/beaconhq/beacon-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SermonService handles recorded talks in the media program.
type SermonService struct {
	sermonRepo *repository.SermonRepository
	media      *storage.MediaStore
	log        zerolog.Logger
}

// NewSermonService creates a new SermonService.
func NewSermonService(sermonRepo *repository.SermonRepository, media *storage.MediaStore, log zerolog.Logger) *SermonService {
	return &SermonService{
		sermonRepo: sermonRepo,
		media:      media,
		log:        log.With().Str("component", "sermon_service").Logger(),
	}
}

// GetByID retrieves a sermon by its UUID.
func (s *SermonService) GetByID(ctx context.Context, id uuid.UUID) (*model.Sermon, error) {
	return s.sermonRepo.GetByID(ctx, id)
}

// List retrieves sermons with pagination, newest recording first.
func (s *SermonService) List(ctx context.Context, page, perPage int) ([]model.Sermon, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	sermons, total, err := s.sermonRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if sermons == nil {
		sermons = []model.Sermon{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return sermons, pagination, nil
}

// Create inserts a new sermon as a draft.
func (s *SermonService) Create(ctx context.Context, req *model.CreateSermonRequest) (*model.Sermon, error) {
	sermon := &model.Sermon{
		Title:      req.Title,
		Speaker:    req.Speaker,
		Passage:    req.Passage,
		RecordedOn: req.RecordedOn,
		MediaKey:   req.MediaKey,
	}
	if err := s.sermonRepo.Create(ctx, sermon); err != nil {
		return nil, err
	}
	s.log.Info().Str("sermon_id", sermon.ID.String()).Msg("Sermon created")
	return sermon, nil
}

// Update applies a partial update to a sermon.
func (s *SermonService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateSermonRequest) (*model.Sermon, error) {
	sermon, err := s.sermonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		sermon.Title = req.Title
	}
	if req.Speaker != "" {
		sermon.Speaker = req.Speaker
	}
	if req.Passage != nil {
		sermon.Passage = *req.Passage
	}
	if req.RecordedOn != nil {
		sermon.RecordedOn = *req.RecordedOn
	}
	if req.MediaKey != nil {
		sermon.MediaKey = req.MediaKey
	}
	if req.IsPublished != nil {
		sermon.IsPublished = *req.IsPublished
	}

	if err := s.sermonRepo.Update(ctx, sermon); err != nil {
		return nil, err
	}
	return sermon, nil
}

// Delete removes a sermon and its stored recording.
func (s *SermonService) Delete(ctx context.Context, id uuid.UUID) error {
	sermon, err := s.sermonRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.sermonRepo.Delete(ctx, id); err != nil {
		return err
	}

	if sermon.MediaKey != nil {
		if err := s.media.Delete(ctx, *sermon.MediaKey); err != nil {
			s.log.Warn().Err(err).Str("sermon_id", id.String()).Msg("Sermon media delete failed")
		}
	}

	s.log.Info().Str("sermon_id", id.String()).Msg("Sermon deleted")
	return nil
}
