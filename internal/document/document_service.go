package document

import (
	"context"
	"time"

	documenterrors "github.com/headhr-blip/worknest/internal/document/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxDocumentSize = 10 << 20 // 10 MiB

type Service interface {
	Upload(ctx context.Context, userID, actorID, name, category string, content []byte) (DocumentResponse, error)
	ListForUser(ctx context.Context, userID string) ([]DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	uploader Uploader
	logger   *zap.Logger
}

func NewService(repo Repository, uploader Uploader, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{repo: repo, uploader: uploader, logger: l}
}

func (s *service) Upload(ctx context.Context, userID, actorID, name, category string, content []byte) (DocumentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidUserID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidUserID
	}
	if len(content) == 0 {
		return DocumentResponse{}, documenterrors.ErrMissingFile
	}
	if len(content) > maxDocumentSize {
		return DocumentResponse{}, documenterrors.ErrFileTooLarge
	}
	if category == "" {
		category = "general"
	}
	if s.uploader == nil {
		return DocumentResponse{}, documenterrors.ErrUploadsDisabled
	}

	url, err := s.uploader.Upload(ctx, name, content)
	if err != nil {
		s.logger.Error("upload document failed",
			zap.String("user_id", userID),
			zap.String("name", name),
			zap.Error(err),
		)
		return DocumentResponse{}, documenterrors.ErrUploadFailed
	}

	d := &EmployeeDocument{
		ID:         uuid.New(),
		UserID:     userUUID,
		Name:       name,
		Category:   category,
		URL:        url,
		UploadedBy: actorUUID,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return DocumentResponse{}, err
	}

	s.logger.Info("document uploaded",
		zap.String("document_id", d.ID.String()),
		zap.String("user_id", userID),
		zap.String("category", category),
	)

	return mapToResponse(*d), nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]DocumentResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, documenterrors.ErrInvalidUserID
	}

	docs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		resp[i] = mapToResponse(d)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return documenterrors.ErrDocumentNotFound
	}
	return nil
}

func mapToResponse(d EmployeeDocument) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID.String(),
		UserID:     d.UserID.String(),
		Name:       d.Name,
		Category:   d.Category,
		URL:        d.URL,
		UploadedBy: d.UploadedBy.String(),
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
	}
}
