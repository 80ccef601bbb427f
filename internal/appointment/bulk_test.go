package appointment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeIDs(n int) []uint {
	ids := make([]uint, n)
	for i := range ids {
		ids[i] = uint(i + 1)
	}
	return ids
}

func TestDeleteInBatchesSplitsOnBatchSize(t *testing.T) {
	var batches [][]uint
	del := func(batch []uint) ([]uint, error) {
		batches = append(batches, batch)
		return batch, nil
	}

	// 120 ids -> ceil(120/50) = 3 calls of 50, 50, 20.
	deleted, err := deleteInBatches(makeIDs(120), 50, del)
	require.NoError(t, err)
	assert.Len(t, deleted, 120)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 50)
	assert.Len(t, batches[1], 50)
	assert.Len(t, batches[2], 20)
}

func TestDeleteInBatchesExactMultiple(t *testing.T) {
	calls := 0
	del := func(batch []uint) ([]uint, error) {
		calls++
		return batch, nil
	}
	deleted, err := deleteInBatches(makeIDs(100), 50, del)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, deleted, 100)
}

func TestDeleteInBatchesReportsDeletedNotRequested(t *testing.T) {
	// Backend deletes fewer rows than requested (some ids already gone).
	del := func(batch []uint) ([]uint, error) {
		return batch[:len(batch)-1], nil
	}
	deleted, err := deleteInBatches(makeIDs(75), 50, del)
	require.NoError(t, err)
	assert.Len(t, deleted, 73)
	// The surviving ids (50 and 75, last of each batch) never appear.
	assert.NotContains(t, deleted, uint(50))
	assert.NotContains(t, deleted, uint(75))
	assert.Contains(t, deleted, uint(49))
}

func TestDeleteInBatchesDetectsSilentDenial(t *testing.T) {
	// Row-level rules suppress every delete: zero deleted rows is not success.
	del := func(batch []uint) ([]uint, error) {
		return nil, nil
	}
	_, err := deleteInBatches(makeIDs(10), 50, del)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestDeleteInBatchesStopsOnError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	del := func(batch []uint) ([]uint, error) {
		calls++
		if calls == 2 {
			return nil, boom
		}
		return batch, nil
	}
	deleted, err := deleteInBatches(makeIDs(150), 50, del)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, deleted, 50)
	assert.Equal(t, 2, calls, "remaining batches are abandoned")
}
