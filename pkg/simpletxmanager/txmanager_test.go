package simpletxmanager

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
	unique := &pq.Error{Code: "23505"}

	assert.True(t, isSerializationFailure(serialization))
	assert.True(t, isSerializationFailure(deadlock))
	assert.False(t, isSerializationFailure(unique))
	assert.False(t, isSerializationFailure(errors.New("plain error")))

	// Ошибка драйвера должна распознаваться и через цепочку оберток
	errScan := errors.New("storage: scan row")
	wrapped := fmt.Errorf("%w: GetByID - scan booking: %w", errScan, serialization)
	assert.True(t, isSerializationFailure(wrapped))
}
