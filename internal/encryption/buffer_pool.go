package encryption

import (
	"sync"
)

// chunkSize is the read size when streaming files through a session. It is a
// multiple of every supported block size so full chunks never leave a partial block.
const chunkSize = 64 * 1024

//nolint:gochecknoglobals
var chunkPool = sync.Pool{
	New: func() any {
		buf := make([]byte, chunkSize)

		return &buf
	},
}

func getChunk() *[]byte {
	buf, _ := chunkPool.Get().(*[]byte) //nolint:errcheck // pool only holds *[]byte

	return buf
}

func putChunk(buf *[]byte) {
	chunkPool.Put(buf)
}
