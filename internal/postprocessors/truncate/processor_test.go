package truncate

import (
	"context"
	"testing"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func results(n int) []domain.SearchResult {
	out := make([]domain.SearchResult, n)
	for i := range out {
		out[i].Score = float64(n - i)
	}
	return out
}

func TestProcessor_Process(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		limit int
		in    int
		want  int
	}{
		{"under limit", nil, 5, 3, 3},
		{"over limit", nil, 5, 8, 5},
		{"default limit", nil, 0, 15, domain.DefaultResultLimit},
		{"max below limit", []Option{WithMax(2)}, 5, 8, 2},
		{"max above limit", []Option{WithMax(20)}, 5, 8, 5},
		{"non-positive max ignored", []Option{WithMax(-1)}, 5, 8, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New(tt.opts...).Process(context.Background(), domain.QuerySpec{Limit: tt.limit}, results(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out) != tt.want {
				t.Errorf("expected %d results, got %d", tt.want, len(out))
			}
		})
	}
}

func TestProcessor_KeepsOrder(t *testing.T) {
	out, _ := New().Process(context.Background(), domain.QuerySpec{Limit: 2}, results(4))
	if out[0].Score != 4 || out[1].Score != 3 {
		t.Errorf("expected the first two results, got %v", out)
	}
}
