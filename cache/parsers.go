package cache

import (
	"encoding/binary"
	"time"
)

func ParseInt64(value int64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(value))
	return buf
}

func ParseBytesToInt64(value []byte) int64 {
	return int64(binary.LittleEndian.Uint64(value))
}

func ParseBytesToDateTime(value []byte) time.Time {
	return time.Unix(ParseBytesToInt64(value), 0)
}
