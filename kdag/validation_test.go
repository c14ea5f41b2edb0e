package kdag

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDetectCycles(t *testing.T) {
	tests := []struct {
		name    string
		graph   func(t *testing.T) *Graph[string]
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid DAG - linear chain",
			graph: func(t *testing.T) *Graph[string] {
				return buildTestGraph(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})
			},
		},
		{
			name: "valid DAG - diamond",
			graph: func(t *testing.T) *Graph[string] {
				return buildTestGraph(t, []string{"A", "B", "C", "D"},
					[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"})
			},
		},
		{
			name: "simple cycle - A → B → A",
			graph: func(t *testing.T) *Graph[string] {
				return buildTestGraph(t, []string{"A", "B"}, [2]string{"A", "B"}, [2]string{"B", "A"})
			},
			wantErr: true,
			errMsg:  "cycle detected: A -> B -> A",
		},
		{
			name: "complex cycle - A → B → C → A",
			graph: func(t *testing.T) *Graph[string] {
				return buildTestGraph(t, []string{"A", "B", "C"},
					[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
			},
			wantErr: true,
			errMsg:  "cycle detected: A -> B -> C -> A",
		},
		{
			name: "self-loop - A → A",
			graph: func(t *testing.T) *Graph[string] {
				return buildTestGraph(t, []string{"A"}, [2]string{"A", "A"})
			},
			wantErr: true,
			errMsg:  "cycle detected: A -> A",
		},
		{
			name: "cycle in one branch",
			graph: func(t *testing.T) *Graph[string] {
				return buildTestGraph(t, []string{"A", "B", "C", "E"},
					[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"C", "E"}, [2]string{"E", "C"})
			},
			wantErr: true,
			errMsg:  "cycle detected: C -> E -> C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.graph(t).Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrCycleDetected))
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTopologicalSort(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges [][2]string
		want  []string
	}{
		{
			name:  "no edges keeps insertion order",
			nodes: []string{"c", "a", "b"},
			want:  []string{"c", "a", "b"},
		},
		{
			name:  "linear chain",
			nodes: []string{"C", "B", "A"},
			edges: [][2]string{{"A", "B"}, {"B", "C"}},
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "diamond",
			nodes: []string{"A", "B", "C", "D"},
			edges: [][2]string{{"A", "C"}, {"A", "B"}, {"B", "D"}, {"C", "D"}},
			want:  []string{"A", "B", "C", "D"},
		},
		{
			name:  "ready nodes follow registration order",
			nodes: []string{"x", "b", "a"},
			edges: [][2]string{{"x", "a"}},
			want:  []string{"x", "b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildTestGraph(t, tt.nodes, tt.edges...)

			order, err := g.TopologicalSort()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, order)

			reversed, err := g.ReverseTopologicalSort()
			assert.NoError(t, err)
			for i := range tt.want {
				assert.Equal(t, tt.want[i], reversed[len(reversed)-1-i])
			}
		})
	}

	t.Run("cycle", func(t *testing.T) {
		g := buildTestGraph(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "B"})

		_, err := g.TopologicalSort()
		assert.True(t, errors.Is(err, ErrCycleDetected))
		assert.Contains(t, err.Error(), "B -> C -> B")

		_, err = g.ReverseTopologicalSort()
		assert.True(t, errors.Is(err, ErrCycleDetected))
	})
}
