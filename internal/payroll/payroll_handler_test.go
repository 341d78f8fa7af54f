package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/headhr-blip/worknest/internal/payroll"
	payrollerrors "github.com/headhr-blip/worknest/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	runFn         func(ctx context.Context, actorID string, req payroll.RunRequest) (payroll.RunResponse, error)
	markPaidFn    func(ctx context.Context, id, actorID string, req payroll.MarkPaidRequest) (payroll.PayrollResponse, error)
	getByPeriodFn func(ctx context.Context, month, year int) ([]payroll.PayrollResponse, error)
}

func (f *fakePayrollService) Run(ctx context.Context, actorID string, req payroll.RunRequest) (payroll.RunResponse, error) {
	return f.runFn(ctx, actorID, req)
}

func (f *fakePayrollService) MarkPaid(ctx context.Context, id, actorID string, req payroll.MarkPaidRequest) (payroll.PayrollResponse, error) {
	return f.markPaidFn(ctx, id, actorID, req)
}

func (f *fakePayrollService) GeneratePayslip(ctx context.Context, id string) (string, error) {
	return "", nil
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return payroll.PayrollResponse{}, nil
}

func (f *fakePayrollService) GetByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollResponse, error) {
	if f.getByPeriodFn != nil {
		return f.getByPeriodFn(ctx, month, year)
	}
	return nil, nil
}

func (f *fakePayrollService) GetMine(ctx context.Context, userID string) ([]payroll.PayrollResponse, error) {
	return nil, nil
}

func TestPayrollHandler_Run(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New().String()

	t.Run("returns per-employee outcomes", func(t *testing.T) {
		svc := &fakePayrollService{
			runFn: func(ctx context.Context, aid string, req payroll.RunRequest) (payroll.RunResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, 3, req.Month)
				assert.Equal(t, 2026, req.Year)
				return payroll.RunResponse{
					Month: 3, Year: 2026, Total: 2, Processed: 1, Skipped: 1,
					Outcomes: []payroll.EmployeeOutcome{
						{UserID: uuid.New().String(), Outcome: payroll.OutcomeProcessed},
						{UserID: uuid.New().String(), Outcome: payroll.OutcomeAlreadyProcessed},
					},
				}, nil
			},
		}
		h := payroll.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", actorID)
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/run", strings.NewReader(`{"month":3,"year":2026}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Run(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"already_processed"`)
	})

	t.Run("rejects month out of range at binding", func(t *testing.T) {
		svc := &fakePayrollService{
			runFn: func(ctx context.Context, aid string, req payroll.RunRequest) (payroll.RunResponse, error) {
				t.Fatal("service must not be called")
				return payroll.RunResponse{}, nil
			},
		}
		h := payroll.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", actorID)
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/run", strings.NewReader(`{"month":13,"year":2026}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Run(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_MarkPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New().String()
	payrollID := uuid.New().String()

	t.Run("conflict on repeat payment", func(t *testing.T) {
		svc := &fakePayrollService{
			markPaidFn: func(ctx context.Context, id, aid string, req payroll.MarkPaidRequest) (payroll.PayrollResponse, error) {
				return payroll.PayrollResponse{}, payrollerrors.ErrAlreadyPaid
			},
		}
		h := payroll.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", actorID)
		c.Params = gin.Params{{Key: "id", Value: payrollID}}
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/pay",
			strings.NewReader(`{"payment_method":"bank_transfer","transaction_ref":"TXN-1"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.MarkPaid(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown payment method rejected at binding", func(t *testing.T) {
		h := payroll.NewHandler(&fakePayrollService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", actorID)
		c.Params = gin.Params{{Key: "id", Value: payrollID}}
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/pay",
			strings.NewReader(`{"payment_method":"crypto","transaction_ref":"TXN-1"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.MarkPaid(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_GetByPeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := payroll.NewHandler(&fakePayrollService{
		getByPeriodFn: func(ctx context.Context, month, year int) ([]payroll.PayrollResponse, error) {
			assert.Equal(t, 3, month)
			assert.Equal(t, 2026, year)
			return []payroll.PayrollResponse{{ID: uuid.New().String()}}, nil
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls?month=3&year=2026", nil)

	h.GetByPeriod(c)

	assert.Equal(t, http.StatusOK, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/payrolls?month=march&year=2026", nil)

	h.GetByPeriod(c2)

	assert.Equal(t, http.StatusBadRequest, w2.Code)
}
