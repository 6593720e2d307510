// Package wav extracts raw PCM payloads from RIFF/WAVE containers.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8
)

var riffSignature = []byte("RIFF")

// ErrContainerParse tags any malformed-container failure.
var ErrContainerParse = errors.New("container parse error")

// ExtractPCM walks the subchunks after the RIFF/WAVE header and returns the
// payload of the data chunk. A zero-length data chunk is valid and yields an
// empty slice. A declared chunk size that would run past the end of buf is a
// parse failure, never an out-of-bounds read.
func ExtractPCM(buf []byte) ([]byte, error) {
	if len(buf) < riffHeaderSize {
		return nil, fmt.Errorf("%w: buffer of %d bytes is shorter than the RIFF header", ErrContainerParse, len(buf))
	}
	if !bytes.Equal(buf[:4], riffSignature) {
		return nil, fmt.Errorf("%w: missing RIFF signature", ErrContainerParse)
	}

	offset := riffHeaderSize
	for offset+chunkHeaderSize <= len(buf) {
		chunkID := buf[offset : offset+4]
		chunkSize := int(binary.LittleEndian.Uint32(buf[offset+4 : offset+chunkHeaderSize]))

		if bytes.Equal(chunkID, []byte("data")) {
			end := offset + chunkHeaderSize + chunkSize
			if end > len(buf) {
				return nil, fmt.Errorf("%w: data chunk of %d bytes overruns the buffer", ErrContainerParse, chunkSize)
			}
			return buf[offset+chunkHeaderSize : end], nil
		}

		offset += chunkHeaderSize + chunkSize
	}

	return nil, fmt.Errorf("%w: no data chunk found", ErrContainerParse)
}
