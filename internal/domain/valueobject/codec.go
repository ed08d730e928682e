package valueobject

type Codec int

const (
	CodecJPEG Codec = iota + 1
	CodecPNG
)

func (c Codec) String() string {
	switch c {
	case CodecJPEG:
		return "jpeg"
	case CodecPNG:
		return "png"
	default:
		return "unknown"
	}
}

// CodecFromExtension matches case-sensitively; "JPG" is not a known extension.
func CodecFromExtension(ext string) (Codec, bool) {
	switch ext {
	case "jpg", "jpeg":
		return CodecJPEG, true
	case "png":
		return CodecPNG, true
	default:
		return 0, false
	}
}

// ContentTypes maps a codec to the MIME type written as object metadata.
type ContentTypes map[Codec]string

func DefaultContentTypes() ContentTypes {
	return ContentTypes{
		CodecJPEG: "image/jpeg",
		CodecPNG:  "image/png",
	}
}

func (t ContentTypes) Clone() ContentTypes {
	out := make(ContentTypes, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

func (t ContentTypes) Lookup(c Codec) (string, bool) {
	ct, ok := t[c]
	return ct, ok
}
