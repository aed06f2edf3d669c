// Package mozlz4 implements the mozLz4 container format Firefox uses for
// compressed profile state files such as addonStartup.json.lz4.
//
// The container is an 8-byte magic tag, a little-endian uint32 holding the
// uncompressed size, and a raw LZ4 block. This is not the LZ4 frame format;
// standard lz4 tooling will not read it.
package mozlz4

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Magic is the fixed tag at the start of every mozLz4 container.
const Magic = "mozLz40\x00"

const headerSize = len(Magic) + 4

// ErrFormat is returned by Decode for any malformed container: wrong magic,
// corrupt LZ4 payload, or a size field that disagrees with the payload.
var ErrFormat = errors.New("invalid mozlz4 container")

// Encode compresses raw into a mozLz4 container. It succeeds for any input,
// including empty.
func Encode(raw []byte) ([]byte, error) {
	buf := make([]byte, headerSize+lz4.CompressBlockBound(len(raw)))
	copy(buf, Magic)
	binary.LittleEndian.PutUint32(buf[len(Magic):], uint32(len(raw)))

	var c lz4.Compressor
	n, err := c.CompressBlock(raw, buf[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("compress block: %w", err)
	}
	return buf[:headerSize+n], nil
}

// Decode unpacks a mozLz4 container back into the original bytes. It is the
// inverse of Encode and fails with ErrFormat on any malformed input.
func Decode(container []byte) ([]byte, error) {
	if len(container) < headerSize || string(container[:len(Magic)]) != Magic {
		return nil, fmt.Errorf("%w: missing magic tag", ErrFormat)
	}

	size := binary.LittleEndian.Uint32(container[len(Magic):headerSize])
	if size == 0 {
		return []byte{}, nil
	}

	raw := make([]byte, size)
	n, err := lz4.UncompressBlock(container[headerSize:], raw)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt payload: %v", ErrFormat, err)
	}
	if n != int(size) {
		return nil, fmt.Errorf("%w: size field says %d bytes, payload holds %d", ErrFormat, size, n)
	}
	return raw, nil
}
