package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	abort := &pq.Error{Code: "40001", Message: "could not serialize access"}

	assert.True(t, IsSerializationFailure(abort))
	assert.True(t, IsSerializationFailure(fmt.Errorf("exec query: %w", abort)),
		"the code is found through wrap chains")
	assert.True(t, IsSerializationFailure(fmt.Errorf("internal: %w: insert: %w", errors.New("storage"), abort)))

	assert.False(t, IsSerializationFailure(nil))
	assert.False(t, IsSerializationFailure(errors.New("connection refused")))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(fmt.Errorf("exec query: %v", abort)),
		"a flattened error no longer carries the code")
}
