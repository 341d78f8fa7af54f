package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/headhr-blip/worknest/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEnforcer struct {
	enforceFn func(ctx context.Context, userID, resource, action string) (bool, error)
}

func (f *fakeEnforcer) Enforce(ctx context.Context, userID, resource, action string) (bool, error) {
	return f.enforceFn(ctx, userID, resource, action)
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	run := func(t *testing.T, svc middleware.RBACService, uid string) (*httptest.ResponseRecorder, bool) {
		t.Helper()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		if uid != "" {
			c.Set("user_id", uid)
		}
		c.Request = httptest.NewRequest(http.MethodGet, "/payrolls", nil)

		reached := false
		handlers := gin.HandlersChain{
			middleware.RBACAuthorize(svc, "payrolls", "read"),
			func(c *gin.Context) { reached = true },
		}
		for _, h := range handlers {
			h(c)
			if c.IsAborted() {
				break
			}
		}
		return w, reached
	}

	t.Run("allowed request passes through", func(t *testing.T) {
		svc := &fakeEnforcer{
			enforceFn: func(ctx context.Context, uid, resource, action string) (bool, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, "payrolls", resource)
				assert.Equal(t, "read", action)
				return true, nil
			},
		}

		_, reached := run(t, svc, userID)

		assert.True(t, reached)
	})

	t.Run("denied request gets 403", func(t *testing.T) {
		svc := &fakeEnforcer{
			enforceFn: func(ctx context.Context, uid, resource, action string) (bool, error) {
				return false, nil
			},
		}

		w, reached := run(t, svc, userID)

		assert.False(t, reached)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing auth context gets 401", func(t *testing.T) {
		svc := &fakeEnforcer{
			enforceFn: func(ctx context.Context, uid, resource, action string) (bool, error) {
				t.Fatal("enforcer must not be called")
				return false, nil
			},
		}

		w, reached := run(t, svc, "")

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer failure gets 500", func(t *testing.T) {
		svc := &fakeEnforcer{
			enforceFn: func(ctx context.Context, uid, resource, action string) (bool, error) {
				return false, errors.New("policy backend down")
			},
		}

		w, reached := run(t, svc, userID)

		assert.False(t, reached)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
