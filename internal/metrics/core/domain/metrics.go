package domain

import "time"

// CountResult is the number of records created in one bucket.
type CountResult struct {
	BucketStart time.Time
	Count       int64
}

// FieldDistributionResult counts records per field value within one bucket.
// Values that never occur in the bucket are absent, not zero.
type FieldDistributionResult struct {
	BucketStart time.Time
	Values      map[string]int64
}

// Total sums the distribution.
func (r FieldDistributionResult) Total() int64 {
	var n int64
	for _, c := range r.Values {
		n += c
	}
	return n
}
