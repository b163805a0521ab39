// Package share implements the share-link token codec: a document blob is
// deflate-compressed and base64url-encoded into a token small enough to live
// in a URL fragment. There is no server-side state behind a link: the token
// IS the document.
package share

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"tripplan/internal/domain"
)

// maxDecodedSize caps the inflated payload. Documents are kilobytes; a token
// that inflates past this is hostile or corrupt, not a trip plan.
const maxDecodedSize = 4 << 20

// Encode compresses raw and encodes it as a URL-safe token.
func Encode(raw []byte) (string, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("share.Encode: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return "", fmt.Errorf("share.Encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("share.Encode: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. Any malformed token (bad base64, bad deflate
// stream, or an oversized payload) returns domain.ErrBadPayload so callers
// surface one blocking notice and apply nothing.
func Decode(token string) ([]byte, error) {
	packed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("share.Decode: %w: not base64url", domain.ErrBadPayload)
	}

	zr := flate.NewReader(bytes.NewReader(packed))
	defer zr.Close()

	raw, err := io.ReadAll(io.LimitReader(zr, maxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("share.Decode: %w: bad deflate stream", domain.ErrBadPayload)
	}
	if len(raw) > maxDecodedSize {
		return nil, fmt.Errorf("share.Decode: %w: payload too large", domain.ErrBadPayload)
	}
	return raw, nil
}
