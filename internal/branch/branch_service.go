package branch

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	brancherrors "github.com/headhr-blip/worknest/internal/branch/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	branchAllKey       = "branches:all"
	branchListCacheTTL = 30 * time.Minute
)

type Service interface {
	Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)
	GetAll(ctx context.Context) ([]BranchResponse, error)
	GetByID(ctx context.Context, id string) (BranchResponse, error)
	Update(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("branch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("branch.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error) {
	b := &Branch{
		ID:      uuid.New(),
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return BranchResponse{}, mapRepositoryError(err)
	}

	s.invalidateListCache(ctx)
	return mapToResponse(*b), nil
}

// GetAll serves the branch list through a redis read-through cache.
// Singleflight collapses concurrent cache misses into one database query.
func (s *service) GetAll(ctx context.Context) ([]BranchResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, branchAllKey).Result()
		if err == nil {
			var resp []BranchResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(branchAllKey, func() (interface{}, error) {
		branches, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(branches)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, branchAllKey, jsonData, branchListCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]BranchResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (BranchResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BranchResponse{}, brancherrors.ErrBranchNotFound
		}
		return BranchResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BranchResponse{}, brancherrors.ErrBranchNotFound
		}
		return BranchResponse{}, err
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.City != nil {
		b.City = *req.City
	}
	if req.Address != nil {
		b.Address = *req.Address
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return BranchResponse{}, mapRepositoryError(err)
	}

	s.invalidateListCache(ctx)
	return mapToResponse(*b), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return brancherrors.ErrBranchNotFound
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, branchAllKey).Err(); err != nil {
		s.logger.Warn("invalidate branch cache failed", zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_branches_name" {
			return brancherrors.ErrBranchNameExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_branches_name") {
		return brancherrors.ErrBranchNameExists
	}

	return err
}

func mapToResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:      b.ID.String(),
		Name:    b.Name,
		City:    b.City,
		Address: b.Address,
	}
}

func mapToListResponse(branches []Branch) []BranchResponse {
	resp := make([]BranchResponse, len(branches))
	for i, b := range branches {
		resp[i] = mapToResponse(b)
	}
	return resp
}
