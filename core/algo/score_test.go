package algo

import (
	"math"
	"testing"

	"github.com/huangsam/ransomready/schema"
	"github.com/stretchr/testify/assert"
)

func answer(id string, value int, weight float64) schema.Answer {
	return schema.Answer{QuestionID: id, Response: schema.Response{Value: value, Weight: weight}}
}

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name     string
		earned   float64
		possible float64
		expected float64
	}{
		{"half", 20, 40, 50},
		{"full", 40, 40, 100},
		{"zero possible", 0, 0, 0},
		{"negative possible", 10, -1, 0},
		{"zero earned", 0, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeRatio(tt.earned, tt.possible)
			assert.Equal(t, tt.expected, got)
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestStageScore(t *testing.T) {
	t.Run("two answers", func(t *testing.T) {
		earned, possible, pct := StageScore([]schema.Answer{answer("a", 4, 10), answer("b", 2, 10)})
		assert.Equal(t, 60.0, earned)
		assert.Equal(t, 80.0, possible)
		assert.Equal(t, 75.0, pct)
	})

	t.Run("empty stage", func(t *testing.T) {
		earned, possible, pct := StageScore(nil)
		assert.Equal(t, 0.0, earned)
		assert.Equal(t, 0.0, possible)
		assert.Equal(t, 0.0, pct)
	})

	t.Run("fractional weights", func(t *testing.T) {
		earned, possible, _ := StageScore([]schema.Answer{answer("a", 3, 0.5), answer("b", 1, 2.25)})
		assert.InDelta(t, 3.75, earned, 1e-9)
		assert.InDelta(t, 11.0, possible, 1e-9)
	})

	t.Run("order independent", func(t *testing.T) {
		_, _, first := StageScore([]schema.Answer{answer("a", 1, 3), answer("b", 4, 7), answer("c", 2, 1)})
		_, _, second := StageScore([]schema.Answer{answer("c", 2, 1), answer("a", 1, 3), answer("b", 4, 7)})
		assert.InDelta(t, first, second, 1e-12)
	})
}

func TestQuestionPercentageIgnoresWeight(t *testing.T) {
	for v := schema.MinOptionValue; v <= schema.MaxOptionValue; v++ {
		for _, w := range []float64{0.1, 1, 5, 10, 1e6} {
			e, p := Points(schema.Response{Value: v, Weight: w})
			assert.InDelta(t, float64(v)/4*100, SafeRatio(e, p), 1e-9)
			assert.Equal(t, float64(v)/4*100, QuestionPercentage(v))
		}
	}
	assert.Equal(t, 25.0, QuestionPercentage(1))
	assert.Equal(t, 100.0, QuestionPercentage(4))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 75.0, Round1(75.0))
	assert.Equal(t, 66.7, Round1(200.0/3))
	assert.Equal(t, 33.3, Round1(100.0/3))
	assert.Equal(t, 0.0, Round1(0.04))
}

func TestReadinessLevel(t *testing.T) {
	tests := []struct {
		pct      float64
		expected schema.ReadinessLevel
	}{
		{100, schema.ExcellentLevel},
		{85.0, schema.ExcellentLevel},
		{84.9, schema.GoodLevel},
		{70.0, schema.GoodLevel},
		{69.9, schema.ModerateLevel},
		{55.0, schema.ModerateLevel},
		{54.9, schema.PoorLevel},
		{40.0, schema.PoorLevel},
		{39.9, schema.CriticalLevel},
		{0, schema.CriticalLevel},
		{-5, schema.CriticalLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ReadinessLevel(tt.pct), "pct=%v", tt.pct)
	}
}

// BenchmarkStageScore measures the rollup of a full stage.
func BenchmarkStageScore(b *testing.B) {
	answers := make([]schema.Answer, 0, 50)
	for i := range 50 {
		answers = append(answers, answer("q", i%5, float64(i%10+1)))
	}

	for b.Loop() {
		StageScore(answers)
	}
}
