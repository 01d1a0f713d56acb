package catalog

import (
	"bytes"
	"fmt"
	"strconv"

	xxhash3 "github.com/zeebo/xxh3"
)

const checksumPrefix = "#xxh3 "

// Snapshot returns the saved form of l followed by a checksum line.
func (l *Library) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	if err := l.Save(&buf); err != nil {
		return nil, err
	}
	return seal(buf.Bytes()), nil
}

// LoadSnapshot restores l from data produced by Snapshot or Save. A checksum
// line, when present, must match.
func (l *Library) LoadSnapshot(data []byte) error {
	payload, err := unseal(data)
	if err != nil {
		return err
	}
	return l.Restore(bytes.NewReader(payload))
}

func seal(payload []byte) []byte {
	return fmt.Appendf(payload, "%s%016x\n", checksumPrefix, xxhash3.Hash(payload))
}

func unseal(data []byte) ([]byte, error) {
	trimmed := bytes.TrimRight(data, "\n")
	i := bytes.LastIndexByte(trimmed, '\n')
	last := trimmed[i+1:]
	if !bytes.HasPrefix(last, []byte(checksumPrefix)) {
		return data, nil
	}
	payload := data[:i+1]
	want, err := strconv.ParseUint(string(last[len(checksumPrefix):]), 16, 64)
	if err != nil || xxhash3.Hash(payload) != want {
		return nil, ErrChecksum
	}
	return payload, nil
}
