package valueobject

import (
	"fmt"
	"net/url"
)

type ObjectKey struct {
	Bucket string
	Key    string
}

func NewObjectKey(bucket, key string) ObjectKey {
	return ObjectKey{Bucket: bucket, Key: key}
}

// DecodeEventKey undoes the form encoding applied to keys in bucket
// notifications: '+' stands for a space and the rest is percent-encoded.
func DecodeEventKey(raw string) (string, error) {
	key, err := url.QueryUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("unescaping key %q: %w", raw, err)
	}
	return key, nil
}

func (k ObjectKey) String() string {
	return k.Bucket + "/" + k.Key
}
