package collect

import (
	"fmt"

	"github.com/huangsam/ransomready/schema"
)

// MissingQuestion names a question without an answer.
type MissingQuestion struct {
	Stage      schema.Stage
	QuestionID string
}

// IncompleteError reports unanswered questions. It is a normal state for an
// assessment in progress and is never a malformed response.
type IncompleteError struct {
	Missing  []MissingQuestion
	Answered int
	Total    int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("assessment still in progress: %d of %d questions unanswered", len(e.Missing), e.Total)
}

// CheckComplete returns an *IncompleteError when any question of the catalog
// has no answer in rs.
func CheckComplete(catalog *schema.Catalog, rs *schema.ResponseSet) error {
	var missing []MissingQuestion
	for _, sd := range catalog.Stages {
		for _, q := range sd.Questions {
			if _, ok := rs.Get(sd.Stage, q.ID); !ok {
				missing = append(missing, MissingQuestion{Stage: sd.Stage, QuestionID: q.ID})
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	total := catalog.QuestionCount()
	return &IncompleteError{Missing: missing, Answered: total - len(missing), Total: total}
}
