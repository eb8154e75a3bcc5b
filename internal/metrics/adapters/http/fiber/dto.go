package fiber

import "time"

type CountBucketResponse struct {
	BucketStart time.Time `json:"bucketStart" example:"2023-01-01T00:00:00Z"`
	Count       int64     `json:"count" example:"3"`
}

type CountResponse struct {
	Unit    string                `json:"unit" example:"day"`
	After   *time.Time            `json:"after,omitempty"`
	Buckets []CountBucketResponse `json:"buckets"`
	Total   int64                 `json:"total" example:"3"`
}

type FieldBucketResponse struct {
	BucketStart time.Time        `json:"bucketStart" example:"2023-01-01T00:00:00Z"`
	Values      map[string]int64 `json:"values"`
}

type FieldCountResponse struct {
	Unit    string                `json:"unit" example:"month"`
	Field   string                `json:"field" example:"databaseType"`
	After   *time.Time            `json:"after,omitempty"`
	Buckets []FieldBucketResponse `json:"buckets"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_unit"`
	Message string `json:"message,omitempty" example:"invalid granularity unit"`
}
