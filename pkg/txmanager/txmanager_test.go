package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}
	deadlock := &pq.Error{Code: "40P01"}

	assert.True(t, isSerializationFailure(serialization))
	assert.True(t, isSerializationFailure(fmt.Errorf("probe window: %w", serialization)))
	assert.False(t, isSerializationFailure(deadlock))
	assert.False(t, isSerializationFailure(errors.New("plain error")))
	assert.False(t, isSerializationFailure(nil))
}

func TestIsSerializationFailure_SurvivesWrapping(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}

	// The shapes a 40001 actually arrives in: wrapped by the commit
	// path, and wrapped twice on the query path (repository sentinel,
	// then the use case's internal-error sentinel).
	commitPath := fmt.Errorf("%w: commit: %w", ErrTransaction, serialization)
	assert.True(t, isSerializationFailure(commitPath))

	repoErr := fmt.Errorf("%w: FindBetween - execute query: %w",
		errors.New("schedule.repository: failed to execute query"), serialization)
	queryPath := fmt.Errorf("%w: failed to probe window: %w",
		errors.New("create_schedule: internal error"), repoErr)
	assert.True(t, isSerializationFailure(queryPath))
}
