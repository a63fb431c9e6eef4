package algo

import (
	"testing"

	"github.com/huangsam/ransomready/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(stage schema.Stage, id, tag string, value int, weight float64) schema.QuestionScore {
	e, p := Points(schema.Response{Value: value, Weight: weight})
	return schema.QuestionScore{
		Stage: stage, QuestionID: id, TechniqueTag: tag,
		Value: value, Weight: weight, Earned: e, Possible: p,
		Percentage: Round1(QuestionPercentage(value)),
	}
}

func TestCoverage(t *testing.T) {
	lookup := func(tag string) (schema.Technique, bool) {
		if tag == "T1490" {
			return schema.Technique{ID: tag, Name: "Inhibit System Recovery"}, true
		}
		return schema.Technique{}, false
	}

	breakdown := []schema.QuestionScore{
		scored(schema.PreInfection, "backup_strategy", "T1490", 4, 10),
		scored(schema.PreInfection, "user_training", "", 1, 7),
		scored(schema.PostInfection, "recovery_procedures", "T1490", 2, 10),
		scored(schema.PostInfection, "lessons_learned", "T0000", 3, 5),
	}

	coverage := Coverage(breakdown, lookup)
	require.Len(t, coverage, 3)

	t.Run("shared tag is summed", func(t *testing.T) {
		c := coverage[0]
		assert.Equal(t, "T1490", c.Tag)
		assert.Equal(t, 60.0, c.Earned)
		assert.Equal(t, 80.0, c.Possible)
		assert.Equal(t, 75.0, c.Percentage)
		require.Len(t, c.Questions, 2)
		assert.Equal(t, "backup_strategy", c.Questions[0].QuestionID)
		assert.Equal(t, "recovery_procedures", c.Questions[1].QuestionID)
		require.NotNil(t, c.Info)
		assert.Equal(t, "Inhibit System Recovery", c.Info.Name)
	})

	t.Run("empty tag is a group", func(t *testing.T) {
		c := coverage[1]
		assert.Equal(t, "", c.Tag)
		assert.Equal(t, 25.0, c.Percentage)
		assert.Nil(t, c.Info)
	})

	t.Run("unknown tag has no info", func(t *testing.T) {
		c := coverage[2]
		assert.Equal(t, "T0000", c.Tag)
		assert.Nil(t, c.Info)
	})
}

func TestCoverageEmpty(t *testing.T) {
	assert.Empty(t, Coverage(nil, nil))
}
