package tree_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dcsaszar/jasmine/pkg/suite"
	"github.com/dcsaszar/jasmine/pkg/tree"
)

func TestFoldConcurrent_DeclarationOrder(t *testing.T) {
	t.Parallel()

	root := newSuite(nil, "suite0", "")
	const siblings = 50
	for i := 0; i < siblings; i++ {
		newSuite(root, fmt.Sprintf("suite%d", i+1), "child")
	}

	// Completion order varies across goroutines; results must not.
	var mu sync.Mutex
	started := 0

	results, err := tree.FoldConcurrent(context.Background(), root, 8,
		func(ctx context.Context, c suite.Child) (string, error) {
			mu.Lock()
			started++
			mu.Unlock()
			s, ok := c.(*suite.Suite)
			if !ok {
				return "", errors.New("unexpected leaf")
			}
			return s.ID(), nil
		})
	if err != nil {
		t.Fatalf("FoldConcurrent failed: %v", err)
	}

	if started != siblings {
		t.Errorf("visited %d children, want %d", started, siblings)
	}
	if len(results) != siblings {
		t.Fatalf("got %d results, want %d", len(results), siblings)
	}

	children := root.Children()
	for i, got := range results {
		want := children[i].(*suite.Suite).ID()
		if got != want {
			t.Errorf("results[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestFoldConcurrent_FirstErrorWins(t *testing.T) {
	t.Parallel()

	root := newSuite(nil, "suite0", "")
	newSuite(root, "suite1", "ok")
	newSuite(root, "suite2", "bad")

	boom := errors.New("boom")
	_, err := tree.FoldConcurrent(context.Background(), root, 2,
		func(ctx context.Context, c suite.Child) (struct{}, error) {
			if c.(*suite.Suite).ID() == "suite2" {
				return struct{}{}, boom
			}
			return struct{}{}, nil
		})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
}

func TestFoldConcurrent_ContextCancellation(t *testing.T) {
	t.Parallel()

	root := newSuite(nil, "suite0", "")
	for i := 0; i < 10; i++ {
		newSuite(root, "child", "child")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tree.FoldConcurrent(ctx, root, 1,
		func(ctx context.Context, c suite.Child) (struct{}, error) {
			return struct{}{}, ctx.Err()
		})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestFoldConcurrent_IsolatedSiblingContexts(t *testing.T) {
	t.Parallel()

	root := newSuite(nil, "suite0", "")
	root.SharedUserContext().Set("x", 1)
	a := newSuite(root, "suite1", "a")
	b := newSuite(root, "suite2", "b")

	// Sibling branches mutate their own context snapshots concurrently;
	// neither the parent nor the other sibling may observe the writes.
	err := tree.WalkConcurrent(context.Background(), root, 2,
		func(ctx context.Context, c suite.Child) error {
			s := c.(*suite.Suite)
			s.SharedUserContext().Set("x", s.ID())
			return nil
		})
	if err != nil {
		t.Fatalf("WalkConcurrent failed: %v", err)
	}

	if v, _ := root.SharedUserContext().Get("x"); v != 1 {
		t.Errorf("root context x = %v, want 1", v)
	}
	if v, _ := a.SharedUserContext().Get("x"); v != "suite1" {
		t.Errorf("a context x = %v, want suite1", v)
	}
	if v, _ := b.SharedUserContext().Get("x"); v != "suite2" {
		t.Errorf("b context x = %v, want suite2", v)
	}
}
