package document_test

import (
	"context"
	"testing"

	"github.com/headhr-blip/worknest/internal/document"
	documenterrors "github.com/headhr-blip/worknest/internal/document/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDocumentRepository struct {
	createFn func(ctx context.Context, d *document.EmployeeDocument) error
}

func (f *fakeDocumentRepository) Create(ctx context.Context, d *document.EmployeeDocument) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDocumentRepository) FindByUser(ctx context.Context, userID string) ([]document.EmployeeDocument, error) {
	return nil, nil
}

func (f *fakeDocumentRepository) FindByID(ctx context.Context, id string) (*document.EmployeeDocument, error) {
	return nil, nil
}

func (f *fakeDocumentRepository) Delete(ctx context.Context, id string) (int64, error) {
	return 1, nil
}

type fakeDocUploader struct {
	uploadFn func(ctx context.Context, name string, content []byte) (string, error)
}

func (f *fakeDocUploader) Upload(ctx context.Context, name string, content []byte) (string, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, name, content)
	}
	return "https://cdn.example.com/" + name, nil
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("stores the returned URL", func(t *testing.T) {
		var stored *document.EmployeeDocument
		repo := &fakeDocumentRepository{
			createFn: func(ctx context.Context, d *document.EmployeeDocument) error {
				stored = d
				return nil
			},
		}
		svc := document.NewService(repo, &fakeDocUploader{})

		resp, err := svc.Upload(ctx, userID, actorID, "contract.pdf", "", []byte("dummy"))

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/contract.pdf", resp.URL)
		assert.Equal(t, "general", stored.Category)
	})

	t.Run("no uploader configured fails cleanly", func(t *testing.T) {
		repo := &fakeDocumentRepository{
			createFn: func(ctx context.Context, d *document.EmployeeDocument) error {
				t.Fatal("nothing must be persisted without storage")
				return nil
			},
		}
		svc := document.NewService(repo, nil)

		_, err := svc.Upload(ctx, userID, actorID, "contract.pdf", "", []byte("dummy"))

		assert.ErrorIs(t, err, documenterrors.ErrUploadsDisabled)
	})

	t.Run("empty file rejected", func(t *testing.T) {
		svc := document.NewService(&fakeDocumentRepository{}, &fakeDocUploader{})

		_, err := svc.Upload(ctx, userID, actorID, "contract.pdf", "", nil)

		assert.ErrorIs(t, err, documenterrors.ErrMissingFile)
	})
}
