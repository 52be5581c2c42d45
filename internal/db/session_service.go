package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gookit/validate"
	"gorm.io/gorm"

	"github.com/balkashynov/learnlog/internal/models"
	"github.com/balkashynov/learnlog/internal/parser"
)

// CreateSessionRequest holds the data needed to log a session
type CreateSessionRequest struct {
	Start     time.Time
	End       time.Time
	Medium    string   `validate:"required"`
	Title     string   `validate:"required"`
	Teacher   string
	Tags      []string // free input, normalized by parser.ParseTags
	Notes     string
	Hyperlink string `validate:"url"`
}

// CreateSession validates and stores a new session
func CreateSession(ctx context.Context, req CreateSessionRequest) (*models.Session, error) {
	v := validate.Struct(&req)
	if !v.Validate() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSession, v.Errors.One())
	}
	if err := checkTimes(req.Start, req.End); err != nil {
		return nil, err
	}

	session := models.Session{
		SessionStartTime: req.Start,
		SessionEndTime:   req.End,
		Medium:           req.Medium,
		Title:            req.Title,
		Teacher:          req.Teacher,
		Tags:             parser.JoinTags(parser.ParseTags(req.Tags...)),
		Notes:            req.Notes,
		Hyperlink:        req.Hyperlink,
	}

	if err := DB.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &session, nil
}

// checkTimes enforces end >= start, the one invariant the analytics rely on
func checkTimes(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidSession)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: session ends before it starts", ErrInvalidSession)
	}
	return nil
}

// GetSessions returns every session ordered by start time
func GetSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session

	err := DB.WithContext(ctx).
		Order("session_start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	inLocal(sessions)
	return sessions, nil
}

// inLocal moves timestamps into the local zone so calendar days follow the
// user's clock whatever zone the driver hands back
func inLocal(sessions []models.Session) {
	for i := range sessions {
		sessions[i].SessionStartTime = sessions[i].SessionStartTime.Local()
		sessions[i].SessionEndTime = sessions[i].SessionEndTime.Local()
	}
}

// GetSessionByID retrieves a session by ID
func GetSessionByID(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session

	err := DB.WithContext(ctx).First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: #%d", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// DeleteSession soft-deletes a session and returns what was removed
func DeleteSession(ctx context.Context, id uint) (*models.Session, error) {
	session, err := GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := DB.WithContext(ctx).Delete(session).Error; err != nil {
		return nil, fmt.Errorf("failed to delete session #%d: %w", id, err)
	}

	return session, nil
}

// ImportSessions inserts sessions from a backup in one transaction. IDs and
// bookkeeping timestamps are reassigned; any invalid session aborts the
// whole import.
func ImportSessions(ctx context.Context, sessions []models.Session) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}

	fresh := make([]models.Session, 0, len(sessions))
	for i, s := range sessions {
		if err := checkTimes(s.SessionStartTime, s.SessionEndTime); err != nil {
			return 0, fmt.Errorf("session %d: %w", i+1, err)
		}
		s.ID = 0
		s.CreatedAt, s.UpdatedAt = time.Time{}, time.Time{}
		s.DeletedAt = gorm.DeletedAt{}
		fresh = append(fresh, s)
	}

	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&fresh, 100).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import sessions: %w", err)
	}

	return len(fresh), nil
}
