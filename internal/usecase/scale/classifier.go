package scale

import (
	"fmt"
	"strings"

	"github.com/marcos-nsantos/image-scaler/internal/domain"
	"github.com/marcos-nsantos/image-scaler/internal/domain/valueobject"
)

// Classifier decides from the key alone whether an object should be scaled
// and with which codec. It never touches the store.
type Classifier struct {
	prefix string
}

func NewClassifier(prefix string) Classifier {
	return Classifier{prefix: prefix}
}

// Classify returns domain.ErrAlreadyProcessed for keys under the reserved
// prefix, domain.ErrNoExtension when the file name has no non-empty suffix
// after its last dot, and domain.ErrUnsupportedType when that suffix is not
// a known codec.
func (c Classifier) Classify(key string) (valueobject.Codec, error) {
	if strings.HasPrefix(key, c.prefix) {
		return 0, domain.ErrAlreadyProcessed
	}

	name := key[strings.LastIndex(key, "/")+1:]
	dot := strings.LastIndex(name, ".")
	if dot < 0 || dot == len(name)-1 {
		return 0, domain.ErrNoExtension
	}

	ext := name[dot+1:]
	codec, ok := valueobject.CodecFromExtension(ext)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, ext)
	}
	return codec, nil
}
