package main

import (
	"github.com/klauspost/compress/zstd"
)

// zstdSize returns the size of data compressed with zstd at default level.
func zstdSize(data []byte) (int, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(data, nil)), nil
}
