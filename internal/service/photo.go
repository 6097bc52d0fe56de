package service

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidPhoto indicates the submitted photo is not a decodable
// base64 data URL.
var ErrInvalidPhoto = errors.New("photo must be a base64 image data URL")

// decodeDataURL splits a "data:image/jpeg;base64,..." payload into its
// content type and raw bytes. Clients submit photos inline as data URLs;
// the AI layer consumes the URL as-is while storage needs the bytes.
func decodeDataURL(dataURL string) (contentType string, data []byte, err error) {
	const prefix = "data:"
	if !strings.HasPrefix(dataURL, prefix) {
		return "", nil, ErrInvalidPhoto
	}
	meta, payload, found := strings.Cut(dataURL[len(prefix):], ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return "", nil, ErrInvalidPhoto
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, ErrInvalidPhoto
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidPhoto
	}
	return contentType, data, nil
}
