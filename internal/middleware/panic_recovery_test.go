package middleware

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"savingsbook/internal/errors"
	"savingsbook/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/suite"
)

type PanicRecoverySuite struct {
	suite.Suite
	echo *echo.Echo
	logs *bytes.Buffer
	mw   echo.MiddlewareFunc
}

func TestPanicRecoverySuite(t *testing.T) {
	suite.Run(t, new(PanicRecoverySuite))
}

func (s *PanicRecoverySuite) SetupTest() {
	s.echo = echo.New()
	s.logs = &bytes.Buffer{}
	s.mw = PanicRecovery(slog.New(slog.NewJSONHandler(s.logs, nil)))
}

// serve runs handler behind RequestID and PanicRecovery for a routed deposit path
func (s *PanicRecoverySuite) serve(handler echo.HandlerFunc, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/7b0c/deposits", nil)
	if traceID != "" {
		req.Header.Set(TraceIDHeader, traceID)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/accounts/:accountId/deposits")
	c.Set(handlers.StaffIDContextKey, "teller-07")

	s.NotPanics(func() {
		s.NoError(RequestID()(s.mw(handler))(c))
	})
	return rec
}

func counterValue(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func (s *PanicRecoverySuite) event() map[string]any {
	var event map[string]any
	s.Require().NoError(json.Unmarshal(s.logs.Bytes(), &event))
	return event
}

func (s *PanicRecoverySuite) TestRecoveredPanicIsAuditedAndCounted() {
	counter := apiErrorsTotal.WithLabelValues("SYSTEM_001", "/api/v1/accounts/:accountId/deposits", "500")
	before := counterValue(counter)

	rec := s.serve(func(c echo.Context) error {
		var account map[string]int
		account["balance"]++
		return nil
	}, "deposit-trace-1")

	s.Equal(http.StatusInternalServerError, rec.Code)
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("SYSTEM_001", body.Error.Code)
	s.Equal("deposit-trace-1", body.Error.TraceID)

	event := s.event()
	s.Equal("panic_recovered", event["event_type"])
	s.Equal("deposit-trace-1", event["correlation_id"])
	s.Equal("teller-07", event["staff_id"])
	s.Equal(http.MethodPost, event["method"])
	s.Contains(event["panic"], "nil map")
	s.NotEmpty(event["stack_trace"])

	s.Equal(before+1, counterValue(counter))
}

func (s *PanicRecoverySuite) TestPanicValues() {
	for name, value := range map[string]any{
		"string": "ledger invariant broken",
		"error":  stderrors.New("store handle is nil"),
		"int":    42,
	} {
		s.Run(name, func() {
			s.logs.Reset()
			rec := s.serve(func(c echo.Context) error { panic(value) }, "")

			s.Equal(http.StatusInternalServerError, rec.Code)
			// RequestID generated one, so the response still carries it
			s.NotEmpty(rec.Header().Get(TraceIDHeader))
			s.Equal(rec.Header().Get(TraceIDHeader), s.event()["correlation_id"])
		})
	}
}

func (s *PanicRecoverySuite) TestCommittedResponseIsLeftAlone() {
	rec := s.serve(func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusAccepted)
		panic("after write")
	}, "late-trace")

	s.Equal(http.StatusAccepted, rec.Code)
	s.Empty(rec.Body.String())
	s.Equal("panic_recovered", s.event()["event_type"])
}

func (s *PanicRecoverySuite) TestNoPanicPassesThrough() {
	rec := s.serve(func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"status": "ok"})
	}, "")

	s.Equal(http.StatusCreated, rec.Code)
	s.Zero(s.logs.Len())
}

func (s *PanicRecoverySuite) TestAbortHandlerIsRepanicked() {
	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	c := s.echo.NewContext(req, httptest.NewRecorder())

	s.PanicsWithValue(http.ErrAbortHandler, func() {
		_ = s.mw(func(c echo.Context) error { panic(http.ErrAbortHandler) })(c)
	})
}
