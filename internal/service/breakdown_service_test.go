package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/focuscoach/internal/deadline"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdown_EmptyTaskRejected(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sampleBreakdownService()

	for _, task := range []string{"", "   ", "\t\n"} {
		_, err := svc.Breakdown(context.Background(), BreakdownRequest{ClientID: "c", Task: task})
		assert.ErrorIs(t, err, ErrEmptyTask, "task %q", task)
	}
	assert.False(t, env.observer.last().Success)
}

func TestBreakdown_WithoutInboxIsUnpersonalized(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sampleBreakdownService()

	res, err := svc.Breakdown(context.Background(), BreakdownRequest{
		ClientID: "c",
		Task:     "Prepare quarterly report",
		Context:  "due friday",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchExact, res.Breakdown.Match)
	assert.Len(t, res.Breakdown.Steps, 10)
	assert.Empty(t, res.Breakdown.UrgencyNote)
	assert.Equal(t, "due friday", res.Breakdown.UserContext)
	assert.Empty(t, res.Warning)
	assert.Empty(t, res.GmailAddress)
}

func TestBreakdown_PersonalizesWithExplicitAddress(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sampleBreakdownService()

	res, err := svc.Breakdown(context.Background(), BreakdownRequest{
		ClientID:     "c",
		Task:         "prepare quarterly report",
		GmailAddress: "me@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Breakdown.UrgencyNote)
	assert.NotEmpty(t, res.Breakdown.DeadlineTips)
	assert.Contains(t, res.Breakdown.DeadlineContext, "Quarterly Report Due")
	assert.Equal(t, "5", res.Breakdown.Steps[0].EstimatedTime)
	assert.Equal(t, true, env.observer.last().Fields["personalized"])
}

func TestBreakdown_UsesConnectedAddress(t *testing.T) {
	env := newTestEnv(t)
	src := &countingSource{}
	svc := env.breakdownService(src)
	ctx := context.Background()

	require.NoError(t, svc.Connect(ctx, "c", "me@example.com"))
	res, err := svc.Breakdown(ctx, BreakdownRequest{ClientID: "c", Task: "clean my room"})
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", res.GmailAddress)
	assert.Equal(t, []string{"me@example.com"}, src.addresses)

	require.NoError(t, svc.Disconnect(ctx, "c"))
	_, err = svc.Breakdown(ctx, BreakdownRequest{ClientID: "c", Task: "clean my room"})
	require.NoError(t, err)
	assert.Len(t, src.addresses, 1, "disconnected client is not looked up")
}

func TestBreakdown_UrgencyOverride(t *testing.T) {
	env := newTestEnv(t)
	svc := env.breakdownService(&countingSource{})

	res, err := svc.Breakdown(context.Background(), BreakdownRequest{
		ClientID:     "c",
		Task:         "clean my room",
		GmailAddress: "me@example.com",
		Urgency:      domain.UrgencyLow,
	})
	require.NoError(t, err)
	assert.Equal(t, "8", res.Breakdown.Steps[0].EstimatedTime)
	assert.NotEmpty(t, res.Breakdown.UrgencyNote)
}

func TestBreakdown_SourceFailureDegrades(t *testing.T) {
	env := newTestEnv(t)
	svc := env.breakdownService(failingSource{err: deadline.ErrNotConnected})

	res, err := svc.Breakdown(context.Background(), BreakdownRequest{
		ClientID:     "c",
		Task:         "study for exam",
		GmailAddress: "me@example.com",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Warning, "inbox not connected")
	assert.Equal(t, domain.MatchExact, res.Breakdown.Match)
	assert.Empty(t, res.Breakdown.UrgencyNote)
	assert.True(t, env.observer.last().Success)
}

func TestLastBreakdown(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sampleBreakdownService()
	ctx := context.Background()

	_, err := svc.LastBreakdown(ctx, "c")
	assert.ErrorIs(t, err, ErrNoBreakdown)

	require.NoError(t, svc.Connect(ctx, "c", "me@example.com"))
	_, err = svc.LastBreakdown(ctx, "c")
	assert.ErrorIs(t, err, ErrNoBreakdown, "connection alone caches no breakdown")

	_, err = svc.Breakdown(ctx, BreakdownRequest{ClientID: "c", Task: "fold the laundry"})
	require.NoError(t, err)

	st, err := svc.LastBreakdown(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "fold the laundry", st.LastTask)
	assert.Equal(t, domain.MatchKeyword, st.LastBreakdown.Match)

	_, err = svc.LastBreakdown(ctx, "other")
	assert.ErrorIs(t, err, ErrNoBreakdown, "cache is per client")
}

func TestConnect_ValidatesAddress(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sampleBreakdownService()
	ctx := context.Background()

	for _, addr := range []string{"", "nobody", "@example.com", "me@", "me @example.com"} {
		err := svc.Connect(ctx, "c", addr)
		assert.True(t, errors.Is(err, ErrInvalidAddress), "address %q", addr)
	}

	address, connected, err := svc.Connection(ctx, "c")
	require.NoError(t, err)
	assert.False(t, connected)
	assert.Empty(t, address)
}
