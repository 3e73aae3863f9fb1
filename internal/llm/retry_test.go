package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

var (
	tipReply    = MockResponse{Content: json.RawMessage(`{"tip":"Count the beads you push."}`)}
	outage      = MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
	badJSON     = MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{"tip":`), Err: errors.New("truncated")}}
	rateLimited = MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}
)

func TestRetry_Schedule(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		replies   []MockResponse
		wantCalls int
		wantErr   any
	}{
		{"first attempt succeeds", 3, []MockResponse{tipReply}, 1, nil},
		{"outage then success", 3, []MockResponse{outage, tipReply}, 2, nil},
		{"rate limit honours retry-after", 3, []MockResponse{rateLimited, tipReply}, 2, nil},
		{"outage on every attempt", 3, []MockResponse{outage, outage, outage, tipReply}, 3, new(*ErrProviderUnavailable)},
		{"single attempt configured", 1, []MockResponse{outage, tipReply}, 1, new(*ErrProviderUnavailable)},
		{"zero attempts still tries once", 0, []MockResponse{tipReply}, 1, nil},
		{"invalid reply retried once", 5, []MockResponse{badJSON, badJSON, tipReply}, 2, new(*ErrInvalidResponse)},
		{"invalid then valid", 3, []MockResponse{badJSON, tipReply}, 2, nil},
		{
			"truncated reply not retried", 3,
			[]MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"tip":"Co`)}}, tipReply},
			1, new(*ErrMaxTokensExceeded),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.replies...)
			p := WithRetry(mock, fastRetry(tt.attempts))

			resp, err := p.Generate(context.Background(), Request{})
			assert.Equal(t, tt.wantCalls, mock.CallCount())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorAs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, `{"tip":"Count the beads you push."}`, string(resp.Content))
		})
	}
}

func TestRetry_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(outage, outage, tipReply)
	_, err := WithRetry(mock, fastRetry(3)).Generate(ctx, Request{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_DeadlineNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: context.DeadlineExceeded}, tipReply)
	_, err := WithRetry(mock, fastRetry(3)).Generate(context.Background(), Request{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_BackoffGrowsAndCaps(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		InitialWait: 100 * time.Millisecond,
		MaxWait:     300 * time.Millisecond,
		Multiplier:  2,
	}}
	down := &ErrProviderUnavailable{}

	within := func(d, want time.Duration) {
		t.Helper()
		assert.InDelta(t, float64(want), float64(d), float64(want)*0.2+1)
	}
	within(r.backoff(0, down), 100*time.Millisecond)
	within(r.backoff(1, down), 200*time.Millisecond)
	within(r.backoff(4, down), 300*time.Millisecond)

	assert.Equal(t, 7*time.Second, r.backoff(0, &ErrRateLimit{RetryAfter: 7 * time.Second}))
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	assert.Equal(t, "mock", WithRetry(NewMockProvider(), fastRetry(2)).ModelID())
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeout_BoundsSlowProvider(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 5*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "blocking", p.ModelID())
}

func TestTimeout_ZeroReturnsInner(t *testing.T) {
	mock := NewMockProvider()
	assert.Same(t, mock, WithTimeout(mock, 0))
}
