package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{"no tasks", nil, 0},
		{"none done", []Task{{}, {}}, 0},
		{"half done", []Task{{IsDone: true}, {}}, 50},
		{"all done", []Task{{IsDone: true}, {IsDone: true}}, 100},
		{"one of three rounds to 33", []Task{{IsDone: true}, {}, {}}, 33},
		{"two of three rounds to 67", []Task{{IsDone: true}, {IsDone: true}, {}}, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Progress(tt.tasks))
		})
	}
}
