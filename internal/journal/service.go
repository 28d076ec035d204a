package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/lifetracker-api/internal/blob"
	"github.com/lifetracker/lifetracker-api/internal/config"
	"github.com/lifetracker/lifetracker-api/internal/pagination"
	"github.com/lifetracker/lifetracker-api/internal/search"
	"github.com/lifetracker/lifetracker-api/internal/store"
	"github.com/lifetracker/lifetracker-api/internal/textanalytics"
	util "github.com/lifetracker/lifetracker-api/internal/utils"
)

var ErrInvalidInput = errors.New("invalid input")

type Service interface {
	Create(ctx context.Context, userID string, dto CreateJournalDTO) (*JournalEntry, error)
	GetByID(ctx context.Context, id, userID string) (*JournalEntry, error)
	List(ctx context.Context, userID string, f ListFilter, p pagination.Params) (*ListJournalsResponse, error)
	Update(ctx context.Context, id, userID string, dto UpdateJournalDTO) (*JournalEntry, error)
	Delete(ctx context.Context, id, userID string) (bool, error)

	AddAttachment(ctx context.Context, id, userID, fileName, contentType string, data []byte) (*JournalEntry, error)
	RenderHTML(ctx context.Context, id, userID string) (*RenderedEntry, error)
	Search(ctx context.Context, userID, query string, limit int) (*SearchResponse, error)
}

type service struct {
	repo     Repository
	analyzer textanalytics.Analyzer
	searcher search.Service
	uploader blob.Uploader
	renderer *Renderer
}

func NewService(repo Repository, analyzer textanalytics.Analyzer, searcher search.Service, uploader blob.Uploader) Service {
	return &service{
		repo:     repo,
		analyzer: analyzer,
		searcher: searcher,
		uploader: uploader,
		renderer: NewRenderer(),
	}
}

func (s *service) Create(ctx context.Context, userID string, dto CreateJournalDTO) (*JournalEntry, error) {
	log := config.WithContext(ctx)

	if dto.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	format := dto.ContentFormat
	if format == "" {
		format = FormatPlain
	}
	if format != FormatPlain && format != FormatMarkdown {
		return nil, fmt.Errorf("%w: contentFormat must be %q or %q", ErrInvalidInput, FormatPlain, FormatMarkdown)
	}
	if dto.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := util.ParseDate(dto.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	tags := dto.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	e := &JournalEntry{
		ID:             uuid.NewString(),
		UserID:         userID,
		Content:        dto.Content,
		ContentFormat:  format,
		Date:           date,
		Mood:           dto.Mood,
		SentimentScore: s.scoreSentiment(ctx, dto.Content),
		Attachments:    []Attachment{},
		Tags:           tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		log.WithError(err).Error("Failed to create journal entry")
		return nil, err
	}
	s.index(ctx, e)

	log.WithField("journal_id", e.ID).Info("Journal entry created")
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (*JournalEntry, error) {
	e, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil || e == nil {
		return e, err
	}
	normalize(e)
	return e, nil
}

func (s *service) List(ctx context.Context, userID string, f ListFilter, p pagination.Params) (*ListJournalsResponse, error) {
	log := config.WithContext(ctx)

	items, total, err := s.repo.ListByUser(ctx, userID, f, p.Limit, p.Offset)
	if err != nil {
		log.WithError(err).Error("Failed to list journal entries")
		return nil, err
	}
	if items == nil {
		items = []JournalEntry{}
	}
	for i := range items {
		normalize(&items[i])
	}

	return &ListJournalsResponse{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}, nil
}

func (s *service) Update(ctx context.Context, id, userID string, dto UpdateJournalDTO) (*JournalEntry, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	normalize(existing)

	contentChanged := false
	if dto.Content != nil {
		if *dto.Content == "" {
			return nil, fmt.Errorf("%w: content must not be empty", ErrInvalidInput)
		}
		contentChanged = existing.Content != *dto.Content
		existing.Content = *dto.Content
	}
	if dto.ContentFormat != nil {
		if *dto.ContentFormat != FormatPlain && *dto.ContentFormat != FormatMarkdown {
			return nil, fmt.Errorf("%w: contentFormat must be %q or %q", ErrInvalidInput, FormatPlain, FormatMarkdown)
		}
		existing.ContentFormat = *dto.ContentFormat
	}
	if dto.Date != nil {
		date, err := util.ParseDate(*dto.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		existing.Date = date
	}
	if dto.Mood != nil {
		existing.Mood = *dto.Mood
	}
	if dto.Tags != nil {
		tags := *dto.Tags
		if tags == nil {
			tags = []string{}
		}
		existing.Tags = tags
	}
	if contentChanged {
		existing.SentimentScore = s.scoreSentiment(ctx, existing.Content)
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update journal entry")
		return nil, err
	}
	s.index(ctx, existing)
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id, userID string) (bool, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		log.WithError(err).Error("Failed to delete journal entry")
		return false, err
	}
	if err := s.searcher.Remove(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to remove journal entry from search index")
	}
	return true, nil
}

// AddAttachment uploads the bytes through the blob collaborator and
// appends the returned metadata to the entry.
func (s *service) AddAttachment(ctx context.Context, id, userID, fileName, contentType string, data []byte) (*JournalEntry, error) {
	log := config.WithContext(ctx)

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: attachment body is empty", ErrInvalidInput)
	}
	if fileName == "" {
		fileName = "attachment"
	}

	existing, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	normalize(existing)

	url, err := s.uploader.Upload(ctx, userID, data, contentType)
	if err != nil {
		log.WithError(err).Error("Failed to upload attachment")
		return nil, err
	}

	existing.Attachments = append(existing.Attachments, Attachment{
		ID:          uuid.NewString(),
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         url,
	})
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to persist attachment metadata")
		return nil, err
	}
	return existing, nil
}

func (s *service) RenderHTML(ctx context.Context, id, userID string) (*RenderedEntry, error) {
	existing, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	html, err := s.renderer.Render(existing)
	if err != nil {
		return nil, err
	}
	return &RenderedEntry{ID: existing.ID, HTML: html}, nil
}

func (s *service) Search(ctx context.Context, userID, query string, limit int) (*SearchResponse, error) {
	log := config.WithContext(ctx)

	docs, err := s.searcher.Search(ctx, userID, query, limit)
	if err != nil {
		log.WithError(err).Error("Journal search failed")
		return nil, err
	}
	if docs == nil {
		docs = []search.Document{}
	}
	return &SearchResponse{Items: docs, Total: len(docs)}, nil
}

// scoreSentiment asks the collaborator for a score; on failure the entry
// keeps a neutral score rather than failing the write.
func (s *service) scoreSentiment(ctx context.Context, content string) float64 {
	score, err := s.analyzer.ScoreSentiment(ctx, content)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Sentiment scoring failed, keeping neutral score")
		return 0.5
	}
	return textanalytics.Clamp(score)
}

func (s *service) index(ctx context.Context, e *JournalEntry) {
	doc := search.Document{
		ID:      e.ID,
		OwnerID: e.UserID,
		Content: e.Content,
		Tags:    e.Tags,
		Mood:    e.Mood,
		Date:    e.Date,
	}
	if err := s.searcher.Index(ctx, doc); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to index journal entry")
	}
}

// normalize repairs list fields after decoding so attachments and tags
// are never nil.
func normalize(e *JournalEntry) {
	if e.Attachments == nil {
		e.Attachments = []Attachment{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if e.SentimentScore < 0 || e.SentimentScore > 1 {
		e.SentimentScore = textanalytics.Clamp(e.SentimentScore)
	}
}
