package infrastructure

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

type echoData struct{ Value string }

type echoMessage struct{ data echoData }

func (m echoMessage) CommandName() string { return "Echo" }
func (m echoMessage) QueryName() string   { return "Echo" }
func (m echoMessage) EventName() string   { return "Echoed" }
func (m echoMessage) Payload() echoData   { return m.data }

type echoCommandHandler struct{}

func (echoCommandHandler) Handle(_ context.Context, command domain.Command[echoData]) (string, error) {
	return "handled " + command.Payload().Value, nil
}

type slowQueryHandler struct{ delay time.Duration }

func (h slowQueryHandler) Handle(ctx context.Context, query domain.Query[echoData]) (string, error) {
	select {
	case <-time.After(h.delay):
		return query.Payload().Value, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type failingQueryHandler struct{ err error }

func (h failingQueryHandler) Handle(context.Context, domain.Query[echoData]) (string, error) {
	return "", h.err
}

type countingEventHandler struct {
	calls atomic.Int32
	err   error
}

func (h *countingEventHandler) Handle(context.Context, domain.Event[echoData]) error {
	h.calls.Add(1)
	return h.err
}

func TestSimpleCommandBus_Dispatch(t *testing.T) {
	bus := NewSimpleCommandBus[domain.Command[echoData], echoData, string](application.NewNopLogger())

	_, err := bus.Dispatch(context.Background(), echoMessage{data: echoData{Value: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")

	bus.RegisterHandler("Echo", echoCommandHandler{})
	result, err := bus.Dispatch(context.Background(), echoMessage{data: echoData{Value: "x"}})
	require.NoError(t, err)
	assert.Equal(t, "handled x", result)
}

func TestSimpleQueryBus_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		handler application.QueryHandler[domain.Query[echoData], echoData, string]
		timeout time.Duration
		want    string
		wantErr error
	}{
		{name: "result", handler: slowQueryHandler{}, timeout: time.Second, want: "q"},
		{name: "handler error", handler: failingQueryHandler{err: errors.New("boom")}, timeout: time.Second, wantErr: errors.New("boom")},
		{name: "context deadline", handler: slowQueryHandler{delay: time.Second}, timeout: 10 * time.Millisecond, wantErr: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := NewSimpleQueryBus[domain.Query[echoData], echoData, string](application.NewNopLogger())
			bus.RegisterHandler("Echo", tt.handler)

			ctx, cancel := context.WithTimeout(context.Background(), tt.timeout)
			defer cancel()

			got, err := bus.Dispatch(ctx, echoMessage{data: echoData{Value: "q"}})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimpleEventBus_Publish(t *testing.T) {
	bus := NewSimpleEventBus[domain.Event[echoData], echoData](application.NewNopLogger())

	require.NoError(t, bus.Publish(context.Background(), echoMessage{}))

	ok := &countingEventHandler{}
	failing := &countingEventHandler{err: errors.New("handler failed")}
	bus.RegisterHandler("Echoed", ok)
	bus.RegisterHandler("Echoed", failing)

	err := bus.Publish(context.Background(), echoMessage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler failed")
	assert.Equal(t, int32(1), ok.calls.Load())
	assert.Equal(t, int32(1), failing.calls.Load())
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(func() string { return "generated" })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = application.RequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "generated", seen)
	assert.Equal(t, "generated", rr.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "from-client")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "from-client", seen)
	assert.Equal(t, "from-client", rr.Header().Get(RequestIDHeader))
}

func TestGenerateUUID(t *testing.T) {
	a, b := GenerateUUID(), GenerateUUID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
