package domain

// OctetStream is the content type assumed for card payloads that are
// neither declared images nor parseable JSON.
const OctetStream = "application/octet-stream"

// CardResult is the tagged outcome of a member card fetch, resolved once at
// the gateway boundary: either raw image bytes with their content type, or
// a structured JSON document. Exactly one variant is populated.
type CardResult struct {
	Image       []byte
	ContentType string

	Data Document
}

// IsImage reports whether the result carries image bytes.
func (r *CardResult) IsImage() bool {
	return r != nil && r.Data == nil
}

// ImageExtension guesses a file extension from the image's magic bytes,
// falling back to the content type and then to ".bin".
func (r *CardResult) ImageExtension() string {
	if r == nil || len(r.Image) == 0 {
		return ".bin"
	}
	b := r.Image
	switch {
	case len(b) >= 4 && b[0] == 0x89 && b[1] == 'P' && b[2] == 'N' && b[3] == 'G':
		return ".png"
	case len(b) >= 3 && b[0] == 0xff && b[1] == 0xd8 && b[2] == 0xff:
		return ".jpg"
	case len(b) >= 3 && b[0] == 'G' && b[1] == 'I' && b[2] == 'F':
		return ".gif"
	case len(b) >= 2 && b[0] == 'B' && b[1] == 'M':
		return ".bmp"
	}
	switch r.ContentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	}
	return ".bin"
}
