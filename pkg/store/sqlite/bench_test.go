package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/sukryu/pAdmin/pkg/store/base"
)

func setupBenchStore(b *testing.B, rows int) *ResourceStore {
	b.Helper()
	m, err := NewManager(":memory:", nil)
	if err != nil {
		b.Fatalf("failed to open database: %v", err)
	}
	b.Cleanup(func() { _ = m.Close() })

	ctx := context.Background()
	if err := m.Migrate(ctx, &category{}, &article{}); err != nil {
		b.Fatalf("failed to migrate: %v", err)
	}

	s := NewResourceStore(m.DB())
	for i := 0; i < rows; i++ {
		if err := s.Save(ctx, &article{Title: fmt.Sprintf("Article %d", i), Views: i % 100, Published: i%2 == 0}); err != nil {
			b.Fatalf("failed to seed: %v", err)
		}
	}
	return s
}

func BenchmarkResourceStore_FillSave(b *testing.B) {
	s := setupBenchStore(b, 0)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := &article{}
		if err := s.Fill(ctx, a, map[string]any{"title": "bench", "views": "7", "published": true}); err != nil {
			b.Fatalf("Fill failed: %v", err)
		}
		if err := s.Save(ctx, a); err != nil {
			b.Fatalf("Save failed: %v", err)
		}
	}
}

func BenchmarkResourceStore_List(b *testing.B) {
	s := setupBenchStore(b, 10000)
	ctx := context.Background()

	b.ResetTimer()
	b.Run("FirstPage", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = s.List(ctx, &article{}, base.ListQuery{SortBy: "title", Limit: 25})
		}
	})

	b.Run("EqualsFilter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = s.List(ctx, &article{}, base.ListQuery{
				Filters: []base.Filter{{Column: "views", Operator: "=", Value: "50"}},
				Limit:   25,
			})
		}
	})

	b.Run("LikeFilter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = s.List(ctx, &article{}, base.ListQuery{
				Filters: []base.Filter{{Column: "title", Operator: "like", Value: "99"}},
				Limit:   25,
			})
		}
	})
}
