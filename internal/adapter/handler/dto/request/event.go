package request

// S3EventRequest is the subset of an S3 / MinIO bucket notification the
// scaler reads.
type S3EventRequest struct {
	Records []S3EventRecord `json:"Records" binding:"required,min=1,dive"`
}

type S3EventRecord struct {
	EventName string   `json:"eventName"`
	S3        S3Entity `json:"s3"`
}

type S3Entity struct {
	Bucket S3Bucket `json:"bucket"`
	Object S3Object `json:"object"`
}

type S3Bucket struct {
	Name string `json:"name" binding:"required"`
}

type S3Object struct {
	Key  string `json:"key" binding:"required"`
	Size int64  `json:"size"`
}
