package tips

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pms-safya/abacus/internal/llm"
)

func TestService_Tip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"tip": "  Keep your thumb for the earth beads and your finger for heaven.  "}`),
	})
	svc := NewService(mock, DefaultConfig())

	tip, err := svc.Tip(t.Context(), "big friends")
	require.NoError(t, err)
	assert.Equal(t, "Keep your thumb for the earth beads and your finger for heaven.", tip)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "coach-tip", req.Schema.Name)
	assert.Equal(t, 128, req.MaxTokens)
	assert.Contains(t, req.Messages[0].Content, "Topic: big friends")
}

func TestService_DefaultTopic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"tip":"Breathe and count."}`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Tip(t.Context(), "   ")
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Topic: "+DefaultTopic)
}

func TestService_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	tip, err := svc.Tip(t.Context(), "")
	assert.Equal(t, Fallback, tip)
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestService_FallbackOnSchemaMismatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"advice":"wrong key"}`)})
	svc := NewService(mock, DefaultConfig())

	tip, err := svc.Tip(t.Context(), "")
	assert.Equal(t, Fallback, tip)
	var invalid *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestService_NoProvider(t *testing.T) {
	tip, err := NewService(nil, DefaultConfig()).Tip(t.Context(), "")
	assert.Equal(t, Fallback, tip)
	assert.ErrorIs(t, err, ErrNoProvider)

	var nilSvc *Service
	tip, err = nilSvc.Tip(t.Context(), "")
	assert.Equal(t, Fallback, tip)
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestBuildTipUserMessage(t *testing.T) {
	msg := buildTipUserMessage("small friends")
	assert.True(t, strings.HasPrefix(msg, "Topic: small friends\n"))
	assert.Contains(t, msg, "At most 20 words")
}
