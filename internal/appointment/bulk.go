package appointment

import "errors"

// ErrPermissionDenied reports a delete that "succeeded" with zero affected
// rows, which means row-level rules suppressed it.
var ErrPermissionDenied = errors.New("permission denied")

// bulkBatchSize keeps each delete request small enough for the backend.
const bulkBatchSize = 50

// deleteInBatches splits ids into fixed-size batches and collects the ids
// each batch actually deleted. The result is what the database deleted, not
// what was requested. A non-empty batch deleting zero rows aborts with
// ErrPermissionDenied instead of reporting success.
func deleteInBatches(ids []uint, batchSize int, del func([]uint) ([]uint, error)) ([]uint, error) {
	deleted := make([]uint, 0, len(ids))
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		got, err := del(batch)
		if err != nil {
			return deleted, err
		}
		if len(got) == 0 && len(batch) > 0 {
			return deleted, ErrPermissionDenied
		}
		deleted = append(deleted, got...)
	}
	return deleted, nil
}
