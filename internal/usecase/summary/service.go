package summary

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"path"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kimdohyun-dev/actionlog/errors"
	"github.com/kimdohyun-dev/actionlog/internal/domain/entities"
	"github.com/kimdohyun-dev/actionlog/internal/domain/repositories"
	pkgai "github.com/kimdohyun-dev/actionlog/pkg/ai"
)

const historyCacheTTL = 60 * time.Second

// Transcriber converts raw audio bytes into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// Summarizer turns a transcript into the three-field structured result
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (*pkgai.SummaryResult, error)
}

// ObjectStore retains uploaded audio files
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) error
	Remove(ctx context.Context, objectName string) error
}

// Cache is the read cache for history queries
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Result is the response contract of one summarize run
type Result struct {
	Summary     string
	Decisions   string
	ActionItems string
}

// Service chains transcription, summarization and persistence for the
// authenticated principal, and serves ownership-scoped history.
type Service struct {
	summaries   repositories.SummaryRepository
	users       repositories.UserRepository
	transcriber Transcriber
	summarizer  Summarizer
	store       ObjectStore
	cache       Cache
	logger      *zap.Logger
}

// NewService creates a new summary service
func NewService(
	summaries repositories.SummaryRepository,
	users repositories.UserRepository,
	transcriber Transcriber,
	summarizer Summarizer,
	store ObjectStore,
	cache Cache,
	logger *zap.Logger,
) *Service {
	return &Service{
		summaries:   summaries,
		users:       users,
		transcriber: transcriber,
		summarizer:  summarizer,
		store:       store,
		cache:       cache,
		logger:      logger,
	}
}

// SummarizeAndStore runs the two-stage pipeline and persists the result.
// Summarization never starts before transcription completes; its input is the
// transcription's output. A crash between a successful summarize and the store
// write loses the run; there is deliberately no outbox for that window.
func (s *Service) SummarizeAndStore(ctx context.Context, principal, title, filename string, audio []byte) (*Result, error) {
	user, err := s.resolve(ctx, principal)
	if err != nil {
		return nil, err
	}

	if len(audio) == 0 {
		return nil, errors.ErrEmptyUpload()
	}

	audioObject := s.retainAudio(ctx, audio, filename)

	started := time.Now()

	var transcript string
	err = s.retryUpstream(ctx, func() error {
		var terr error
		transcript, terr = s.transcriber.Transcribe(ctx, audio, filename)
		return terr
	})
	if err != nil {
		return nil, err
	}

	var result *pkgai.SummaryResult
	err = s.retryUpstream(ctx, func() error {
		var serr error
		result, serr = s.summarizer.Summarize(ctx, transcript)
		return serr
	})
	if err != nil {
		return nil, err
	}

	processingMs := time.Since(started).Milliseconds()

	record := &entities.Summary{
		Title:        title,
		Summary:      result.Summary,
		Decisions:    result.Decisions,
		ActionItems:  result.ActionItems,
		ModelUsed:    result.Model,
		ProcessingMs: processingMs,
		Usage:        []byte(usageOrEmpty(result.Usage)),
		AudioObject:  audioObject,
		UserID:       user.ID,
	}
	if err := s.summaries.Create(ctx, record); err != nil {
		return nil, errors.ErrInternal(err)
	}

	s.invalidateHistory(ctx, user.ID)

	s.logger.Info("summary created",
		zap.Int64("summary_id", record.ID),
		zap.String("login_id", user.LoginID),
		zap.String("model", result.Model),
		zap.Int64("processing_ms", processingMs),
	)

	return &Result{
		Summary:     result.Summary,
		Decisions:   result.Decisions,
		ActionItems: result.ActionItems,
	}, nil
}

// ListHistory returns all summaries owned by the principal, newest first
func (s *Service) ListHistory(ctx context.Context, principal string) ([]*entities.Summary, error) {
	user, err := s.resolve(ctx, principal)
	if err != nil {
		return nil, err
	}

	key := historyKey(user.ID)
	if cached, hit, cerr := s.cache.Get(ctx, key); cerr == nil && hit {
		var summaries []*entities.Summary
		if uerr := json.Unmarshal([]byte(cached), &summaries); uerr == nil {
			return summaries, nil
		}
	} else if cerr != nil {
		s.logger.Warn("history cache read failed", zap.Error(cerr))
	}

	summaries, err := s.summaries.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	if encoded, merr := json.Marshal(summaries); merr == nil {
		if serr := s.cache.Set(ctx, key, string(encoded), historyCacheTTL); serr != nil {
			s.logger.Warn("history cache write failed", zap.Error(serr))
		}
	}

	return summaries, nil
}

// Delete removes a summary after an explicit ownership check
func (s *Service) Delete(ctx context.Context, principal string, summaryID int64) error {
	user, err := s.resolve(ctx, principal)
	if err != nil {
		return err
	}

	record, err := s.summaries.FindByID(ctx, summaryID)
	if err != nil {
		if stderrors.Is(err, entities.ErrSummaryNotFound) {
			return errors.ErrSummaryNotFound(strconv.FormatInt(summaryID, 10))
		}
		return errors.ErrInternal(err)
	}

	if !record.OwnedBy(user.ID) {
		return errors.ErrNotOwner(strconv.FormatInt(summaryID, 10))
	}

	if err := s.summaries.Delete(ctx, summaryID); err != nil {
		return errors.ErrInternal(err)
	}

	s.invalidateHistory(ctx, user.ID)

	if record.AudioObject != "" {
		if rerr := s.store.Remove(ctx, record.AudioObject); rerr != nil {
			s.logger.Warn("failed to remove retained audio",
				zap.String("object", record.AudioObject),
				zap.Error(rerr),
			)
		}
	}

	return nil
}

// resolve maps the principal (login id from the token subject) to a user record
func (s *Service) resolve(ctx context.Context, principal string) (*entities.User, error) {
	user, err := s.users.FindByLoginID(ctx, principal)
	if err != nil {
		if stderrors.Is(err, entities.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound()
		}
		return nil, errors.ErrInternal(err)
	}
	return user, nil
}

// retainAudio uploads the original recording; failures are logged but do not
// block the pipeline. Returns the object key, empty when retention failed.
func (s *Service) retainAudio(ctx context.Context, audio []byte, filename string) string {
	ext := path.Ext(filename)
	objectName := fmt.Sprintf("audio/%s%s", uuid.New().String(), ext)
	if err := s.store.Upload(ctx, objectName, audio, "application/octet-stream"); err != nil {
		s.logger.Warn("failed to retain uploaded audio", zap.Error(err))
		return ""
	}
	return objectName
}

// retryUpstream wraps one upstream call with bounded exponential backoff.
// Input validation failures are not retried.
func (s *Service) retryUpstream(ctx context.Context, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		var appErr errors.AppError
		if stderrors.As(err, &appErr) && appErr.Code == errors.ErrorCode_EMPTY_UPLOAD {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(bo, ctx))
}

func (s *Service) invalidateHistory(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Del(ctx, historyKey(userID)); err != nil {
		s.logger.Warn("history cache invalidation failed", zap.Error(err))
	}
}

func historyKey(userID uuid.UUID) string {
	return "history:" + userID.String()
}

func usageOrEmpty(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}
