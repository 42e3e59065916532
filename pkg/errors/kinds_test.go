package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForError(t *testing.T) {

	tests := []struct {
		name    string
		err     error
		expKind Kind
	}{
		{
			name:    "nil error has no kind",
			err:     nil,
			expKind: Kind(""),
		},
		{
			name:    "auth error classifies as AuthError",
			err:     NewAuth("123456789012", fmt.Errorf("denied")),
			expKind: KindAuth,
		},
		{
			name:    "wrapped auth error keeps its kind",
			err:     fmt.Errorf("assuming role: %w", NewAuth("123456789012", fmt.Errorf("denied"))),
			expKind: KindAuth,
		},
		{
			name:    "transient error classifies as TransientError",
			err:     NewTransient("throttled", fmt.Errorf("rate exceeded")),
			expKind: KindTransient,
		},
		{
			name:    "state transition error classifies as StateError",
			err:     NewStateTransition("account", "123456789012", "Active", "Onboarding"),
			expKind: KindState,
		},
		{
			name:    "workflow step error classifies as WorkflowStepError",
			err:     NewWorkflowStep("enable_config", fmt.Errorf("boom")),
			expKind: KindWorkflowStep,
		},
		{
			name:    "bare context cancellation classifies as Cancelled",
			err:     context.Canceled,
			expKind: KindCancelled,
		},
		{
			name:    "wrapped deadline classifies as Cancelled",
			err:     fmt.Errorf("waiting: %w", context.DeadlineExceeded),
			expKind: KindCancelled,
		},
		{
			name:    "plain error classifies as ServerError",
			err:     fmt.Errorf("boom"),
			expKind: KindServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expKind, KindForError(tt.err))
		})
	}
}

func TestKindPredicates(t *testing.T) {

	t.Run("transient predicate", func(t *testing.T) {
		assert.True(t, IsTransient(NewTransient("throttled", nil)))
		assert.False(t, IsTransient(NewAuth("123456789012", fmt.Errorf("denied"))))
	})

	t.Run("auth predicate", func(t *testing.T) {
		assert.True(t, IsAuth(NewAccessRoleNotAssumable("arn:aws:iam::123456789012:role/CloudIDP-Access", fmt.Errorf("denied"))))
		assert.False(t, IsAuth(NewTransient("throttled", nil)))
	})

	t.Run("cancelled predicate", func(t *testing.T) {
		assert.True(t, IsCancelled(NewCancelled("not started", nil)))
		assert.True(t, IsCancelled(context.Canceled))
		assert.False(t, IsCancelled(NewTransient("throttled", nil)))
	})

}
