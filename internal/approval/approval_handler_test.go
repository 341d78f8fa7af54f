package approval_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/headhr-blip/worknest/internal/approval"
	approvalerrors "github.com/headhr-blip/worknest/internal/approval/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeApprovalService struct {
	listPendingFn func(ctx context.Context, kind approval.Kind) ([]approval.PendingRequest, error)
	resolveFn     func(ctx context.Context, kind approval.Kind, id, approverID string, req approval.ResolveRequest) (approval.ResolveResponse, error)
}

func (f *fakeApprovalService) ListPending(ctx context.Context, kind approval.Kind) ([]approval.PendingRequest, error) {
	return f.listPendingFn(ctx, kind)
}

func (f *fakeApprovalService) Resolve(ctx context.Context, kind approval.Kind, id, approverID string, req approval.ResolveRequest) (approval.ResolveResponse, error) {
	return f.resolveFn(ctx, kind, id, approverID, req)
}

func TestApprovalHandler_ListPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the queue for a kind", func(t *testing.T) {
		h := approval.NewHandler(&fakeApprovalService{
			listPendingFn: func(ctx context.Context, kind approval.Kind) ([]approval.PendingRequest, error) {
				assert.Equal(t, approval.KindLeave, kind)
				return []approval.PendingRequest{
					{ID: uuid.New().String(), Kind: approval.KindLeave, Summary: "annual leave, 3 days"},
				}, nil
			},
		})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "kind", Value: "leave"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/approvals/leave/pending", nil)

		h.ListPending(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "annual leave, 3 days")
	})

	t.Run("unknown kind maps to bad request", func(t *testing.T) {
		h := approval.NewHandler(&fakeApprovalService{
			listPendingFn: func(ctx context.Context, kind approval.Kind) ([]approval.PendingRequest, error) {
				return nil, approvalerrors.ErrUnknownRequestKind
			},
		})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "kind", Value: "overtime"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/approvals/overtime/pending", nil)

		h.ListPending(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApprovalHandler_Resolve(t *testing.T) {
	gin.SetMode(gin.TestMode)
	approverID := uuid.New().String()
	requestID := uuid.New().String()

	t.Run("passes decision and approver through", func(t *testing.T) {
		h := approval.NewHandler(&fakeApprovalService{
			resolveFn: func(ctx context.Context, kind approval.Kind, id, aid string, req approval.ResolveRequest) (approval.ResolveResponse, error) {
				assert.Equal(t, approval.KindExpense, kind)
				assert.Equal(t, requestID, id)
				assert.Equal(t, approverID, aid)
				assert.Equal(t, "approved", req.Decision)
				return approval.ResolveResponse{
					ID: id, Kind: kind, Status: "approved", ApprovedBy: aid,
				}, nil
			},
		})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", approverID)
		c.Params = gin.Params{
			{Key: "kind", Value: "expense"},
			{Key: "id", Value: requestID},
		}
		c.Request = httptest.NewRequest(http.MethodPost, "/approvals/expense/"+requestID+"/resolve",
			strings.NewReader(`{"decision":"approved","comments":"within policy"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Resolve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"approved"`)
	})

	t.Run("decision outside approved/rejected fails binding", func(t *testing.T) {
		h := approval.NewHandler(&fakeApprovalService{
			resolveFn: func(ctx context.Context, kind approval.Kind, id, aid string, req approval.ResolveRequest) (approval.ResolveResponse, error) {
				t.Fatal("service must not be called")
				return approval.ResolveResponse{}, nil
			},
		})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", approverID)
		c.Params = gin.Params{{Key: "kind", Value: "leave"}, {Key: "id", Value: requestID}}
		c.Request = httptest.NewRequest(http.MethodPost, "/approvals/leave/"+requestID+"/resolve",
			strings.NewReader(`{"decision":"maybe"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Resolve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("second resolution conflicts", func(t *testing.T) {
		h := approval.NewHandler(&fakeApprovalService{
			resolveFn: func(ctx context.Context, kind approval.Kind, id, aid string, req approval.ResolveRequest) (approval.ResolveResponse, error) {
				return approval.ResolveResponse{}, approvalerrors.ErrAlreadyResolved
			},
		})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", approverID)
		c.Params = gin.Params{{Key: "kind", Value: "loan"}, {Key: "id", Value: requestID}}
		c.Request = httptest.NewRequest(http.MethodPost, "/approvals/loan/"+requestID+"/resolve",
			strings.NewReader(`{"decision":"rejected"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Resolve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
