package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CaioNunes1/ecommerce-front/internal/client/api"
	"github.com/CaioNunes1/ecommerce-front/internal/client/session"
)

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want Decision
	}{
		{
			name: "restoring defers even with identity",
			snap: session.Snapshot{Identity: &api.User{ID: 1}, Restoring: true},
			want: Decision{Verdict: Pending},
		},
		{
			name: "restoring defers when anonymous",
			snap: session.Snapshot{Restoring: true},
			want: Decision{Verdict: Pending},
		},
		{
			name: "authenticated allows",
			snap: session.Snapshot{Identity: &api.User{ID: 1}},
			want: Decision{Verdict: Allow},
		},
		{
			name: "anonymous redirects to sign-in",
			snap: session.Snapshot{},
			want: Decision{Verdict: Redirect, Target: SignInRoute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireAuth(tt.snap))
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want Decision
	}{
		{
			name: "restoring defers",
			snap: session.Snapshot{Restoring: true},
			want: Decision{Verdict: Pending},
		},
		{
			name: "admin allows",
			snap: session.Snapshot{Identity: &api.User{ID: 1, Role: "ADMIN"}},
			want: Decision{Verdict: Allow},
		},
		{
			name: "spring-style admin allows",
			snap: session.Snapshot{Identity: &api.User{ID: 1, Role: "ROLE_ADMIN"}},
			want: Decision{Verdict: Allow},
		},
		{
			name: "plain user redirects to root",
			snap: session.Snapshot{Identity: &api.User{ID: 1, Role: "USER"}},
			want: Decision{Verdict: Redirect, Target: RootRoute},
		},
		{
			name: "anonymous redirects to root",
			snap: session.Snapshot{},
			want: Decision{Verdict: Redirect, Target: RootRoute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireAdmin(tt.snap))
		})
	}
}
