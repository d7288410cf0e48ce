package services

import "bytes"

// bytesReader wraps a byte slice for excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
