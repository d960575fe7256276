package health

import (
	"context"
	"errors"
	"testing"
)

type stubStore struct {
	text string
	err  error
}

func (s *stubStore) FetchRawPolicy(ctx context.Context, tenantID string) (string, error) {
	return s.text, s.err
}

func TestPolicyStoreChecker(t *testing.T) {
	tests := []struct {
		name  string
		store *stubStore
		want  Status
	}{
		{"reachable with policy", &stubStore{text: "policy"}, StatusHealthy},
		{"reachable without policy", &stubStore{}, StatusDegraded},
		{"unreachable", &stubStore{err: errors.New("connection refused")}, StatusUnhealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewPolicyStoreChecker(tt.store, "company-1")
			result := checker.Check(context.Background())
			if result.Status != tt.want {
				t.Errorf("status = %v, want %v", result.Status, tt.want)
			}
		})
	}
}
