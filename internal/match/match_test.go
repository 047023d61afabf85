package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "", b: "", want: 0},
		{a: "", b: "abc", want: 3},
		{a: "abc", b: "", want: 3},
		{a: "abc", b: "abc", want: 0},
		{a: "kitten", b: "sitting", want: 3},
		{a: "TaskOptions", b: "TaskOption", want: 1},
		{a: "flaw", b: "lawn", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a))
		})
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, 1.0, Score("", ""))
	assert.Equal(t, 1.0, Score("TaskOptions", "task_options"))
	assert.Equal(t, 0.0, Score("abc", "xyz"))
	assert.Greater(t, Score("VariableOptions", "VariableOption"), 0.9)
}

func TestClosest(t *testing.T) {
	candidates := []string{"VariableOptions", "GetCommentSuggestionsAsync", "Comment"}

	hint, ok := Closest("VariableOption", candidates)
	assert.True(t, ok)
	assert.Equal(t, "VariableOptions", hint)

	hint, ok = Closest("variable_options", candidates)
	assert.True(t, ok)
	assert.Equal(t, "VariableOptions", hint)

	_, ok = Closest("zzzzzz", candidates)
	assert.False(t, ok)

	_, ok = Closest("anything", nil)
	assert.False(t, ok)
}
