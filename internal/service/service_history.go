package service

import (
	"context"
	"fmt"

	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/store"
	"github.com/signbridge/signbridge/models"
)

// Default page sizes per history kind. Text conversations are read in
// larger chunks than recognition events.
const (
	defaultSignHistoryLimit  = 10
	defaultVoiceHistoryLimit = 10
	defaultTextHistoryLimit  = 20
)

// signHistoryService is the concrete implementation of SignHistoryService.
type signHistoryService struct {
	detections store.SignDetectionRepository
	logger     *logger.Logger
}

// NewSignHistoryService constructs a SignHistoryService backed by the
// given repository.
func NewSignHistoryService(detections store.SignDetectionRepository, logger *logger.Logger) SignHistoryService {
	return &signHistoryService{
		detections: detections,
		logger:     logger,
	}
}

// SaveDetection validates and persists one recognized sign for the user.
// Language defaults to "en" when the client omits it.
func (s *signHistoryService) SaveDetection(ctx context.Context, userID int64, req models.DetectSignRequest) (models.SignDetection, error) {
	log := logger.FromContext(ctx)

	if req.DetectedSign == "" {
		return models.SignDetection{}, ErrInvalidDataProvided
	}

	saved, err := s.detections.Create(ctx, models.SignDetection{
		UserID:       userID,
		DetectedSign: req.DetectedSign,
		Confidence:   req.Confidence,
		Language:     defaultLanguage(req.Language),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("sign detection save ended with error")
		return models.SignDetection{}, fmt.Errorf("sign detection save ended with error: %w", err)
	}

	return saved, nil
}

// History returns one page of the user's sign detections, newest first,
// together with the total row count and the effective page actually used.
func (s *signHistoryService) History(ctx context.Context, userID int64, page models.HistoryPage) ([]models.SignDetection, int64, models.HistoryPage, error) {
	log := logger.FromContext(ctx)

	page = normalizePage(page, defaultSignHistoryLimit)

	detections, err := s.detections.ListByUser(ctx, userID, page)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("sign history listing ended with error")
		return nil, 0, page, fmt.Errorf("sign history listing ended with error: %w", err)
	}

	total, err := s.detections.CountByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("sign history count ended with error")
		return nil, 0, page, fmt.Errorf("sign history count ended with error: %w", err)
	}

	return detections, total, page, nil
}

// DeleteDetection removes one detection owned by the user.
// Returns store.ErrRecordNotFound when no such row belongs to them, so a
// user cannot tell another user's record IDs apart from nonexistent ones.
func (s *signHistoryService) DeleteDetection(ctx context.Context, userID, id int64) error {
	if _, err := s.detections.FindByIDAndUser(ctx, id, userID); err != nil {
		return err
	}

	return s.detections.Delete(ctx, id)
}

// voiceHistoryService is the concrete implementation of VoiceHistoryService.
type voiceHistoryService struct {
	transcripts store.VoiceTranscriptRepository
	logger      *logger.Logger
}

// NewVoiceHistoryService constructs a VoiceHistoryService backed by the
// given repository.
func NewVoiceHistoryService(transcripts store.VoiceTranscriptRepository, logger *logger.Logger) VoiceHistoryService {
	return &voiceHistoryService{
		transcripts: transcripts,
		logger:      logger,
	}
}

// SaveTranscript validates and persists one speech-to-text result.
func (s *voiceHistoryService) SaveTranscript(ctx context.Context, userID int64, req models.TranscribeRequest) (models.VoiceTranscript, error) {
	log := logger.FromContext(ctx)

	if req.Transcript == "" {
		return models.VoiceTranscript{}, ErrInvalidDataProvided
	}

	saved, err := s.transcripts.Create(ctx, models.VoiceTranscript{
		UserID:          userID,
		Transcript:      req.Transcript,
		Language:        defaultLanguage(req.Language),
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("voice transcript save ended with error")
		return models.VoiceTranscript{}, fmt.Errorf("voice transcript save ended with error: %w", err)
	}

	return saved, nil
}

// History returns one page of the user's voice transcripts, newest first.
func (s *voiceHistoryService) History(ctx context.Context, userID int64, page models.HistoryPage) ([]models.VoiceTranscript, int64, models.HistoryPage, error) {
	log := logger.FromContext(ctx)

	page = normalizePage(page, defaultVoiceHistoryLimit)

	transcripts, err := s.transcripts.ListByUser(ctx, userID, page)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("voice history listing ended with error")
		return nil, 0, page, fmt.Errorf("voice history listing ended with error: %w", err)
	}

	total, err := s.transcripts.CountByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("voice history count ended with error")
		return nil, 0, page, fmt.Errorf("voice history count ended with error: %w", err)
	}

	return transcripts, total, page, nil
}

// DeleteTranscript removes one transcript owned by the user.
func (s *voiceHistoryService) DeleteTranscript(ctx context.Context, userID, id int64) error {
	if _, err := s.transcripts.FindByIDAndUser(ctx, id, userID); err != nil {
		return err
	}

	return s.transcripts.Delete(ctx, id)
}

// textHistoryService is the concrete implementation of TextHistoryService.
type textHistoryService struct {
	messages store.TextMessageRepository
	logger   *logger.Logger
}

// NewTextHistoryService constructs a TextHistoryService backed by the
// given repository.
func NewTextHistoryService(messages store.TextMessageRepository, logger *logger.Logger) TextHistoryService {
	return &textHistoryService{
		messages: messages,
		logger:   logger,
	}
}

// SaveMessage validates and persists one typed message.
func (s *textHistoryService) SaveMessage(ctx context.Context, userID int64, req models.SaveMessageRequest) (models.TextMessage, error) {
	log := logger.FromContext(ctx)

	if req.MessageText == "" {
		return models.TextMessage{}, ErrInvalidDataProvided
	}

	saved, err := s.messages.Create(ctx, models.TextMessage{
		UserID:      userID,
		MessageText: req.MessageText,
		Language:    defaultLanguage(req.Language),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("text message save ended with error")
		return models.TextMessage{}, fmt.Errorf("text message save ended with error: %w", err)
	}

	return saved, nil
}

// History returns one page of the user's typed messages, newest first.
func (s *textHistoryService) History(ctx context.Context, userID int64, page models.HistoryPage) ([]models.TextMessage, int64, models.HistoryPage, error) {
	log := logger.FromContext(ctx)

	page = normalizePage(page, defaultTextHistoryLimit)

	messages, err := s.messages.ListByUser(ctx, userID, page)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("text history listing ended with error")
		return nil, 0, page, fmt.Errorf("text history listing ended with error: %w", err)
	}

	total, err := s.messages.CountByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("text history count ended with error")
		return nil, 0, page, fmt.Errorf("text history count ended with error: %w", err)
	}

	return messages, total, page, nil
}

// DeleteMessage removes one message owned by the user.
func (s *textHistoryService) DeleteMessage(ctx context.Context, userID, id int64) error {
	if _, err := s.messages.FindByIDAndUser(ctx, id, userID); err != nil {
		return err
	}

	return s.messages.Delete(ctx, id)
}

// normalizePage substitutes the kind-specific default limit when the client
// supplied none. Offset zero is a valid first page and needs no fixup.
func normalizePage(page models.HistoryPage, defaultLimit uint64) models.HistoryPage {
	if page.Limit == 0 {
		page.Limit = defaultLimit
	}

	return page
}

// defaultLanguage falls back to "en" when the client omits the language.
func defaultLanguage(language string) string {
	if language == "" {
		return "en"
	}

	return language
}
