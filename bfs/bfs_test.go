package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
)

// ladderGraph builds cat–cot–cog–dog plus the branch cot–hot and the
// isolated word emu.
func ladderGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"cat", "cot"}, {"cot", "cog"}, {"cog", "dog"}, {"cot", "hot"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", e[0], e[1], err)
		}
	}
	if err := g.AddVertex("emu"); err != nil {
		t.Fatalf("AddVertex(emu): %v", err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "cat"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := ladderGraph(t)
	if _, err := bfs.BFS(g, "zzz"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, "cat", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_OrderDepthAndPath checks visit order, depths and PathTo.
func TestBFS_OrderDepthAndPath(t *testing.T) {
	res, err := bfs.BFS(ladderGraph(t), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// neighbors are visited in ascending order
	if want := []string{"cat", "cot", "cog", "hot", "dog"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for w, d := range map[string]int{"cat": 0, "cot": 1, "cog": 2, "hot": 2, "dog": 3} {
		if got := res.Depth[w]; got != d {
			t.Errorf("Depth[%s] = %d; want %d", w, got, d)
		}
	}
	if _, ok := res.Depth["emu"]; ok {
		t.Errorf("isolated word emu was reached")
	}

	path, err := res.PathTo("dog")
	if err != nil {
		t.Fatalf("PathTo(dog): %v", err)
	}
	if want := []string{"cat", "cot", "cog", "dog"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(dog) = %v; want %v", path, want)
	}
	if path, _ := res.PathTo("cat"); !reflect.DeepEqual(path, []string{"cat"}) {
		t.Errorf("PathTo(cat) = %v; want [cat]", path)
	}
	if _, err := res.PathTo("emu"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(emu): want ErrNoPath, got %v", err)
	}
}

// TestBFS_MaxDepth stops enqueueing beyond the limit.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(ladderGraph(t), "cat", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.Depth["dog"]; ok {
		t.Errorf("dog is at depth 3 and must not be reached with MaxDepth 2")
	}
	if len(res.Order) != 4 {
		t.Errorf("Order = %v; want 4 words", res.Order)
	}
}

// TestBFS_OnVisitStops returns the hook error and the partial result.
func TestBFS_OnVisitStops(t *testing.T) {
	stop := errors.New("found")
	res, err := bfs.BFS(ladderGraph(t), "cat", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "cog" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if res == nil || res.Order[len(res.Order)-1] != "cog" {
		t.Fatalf("partial result should end at cog, got %+v", res)
	}
	if path, err := res.PathTo("cog"); err != nil || len(path) != 3 {
		t.Errorf("PathTo(cog) = %v, %v; want 3 words", path, err)
	}
}

// TestBFS_Canceled honors a done context before the first visit.
func TestBFS_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(ladderGraph(t), "cat", bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if len(res.Order) != 0 {
		t.Errorf("Order = %v; want empty", res.Order)
	}
}
