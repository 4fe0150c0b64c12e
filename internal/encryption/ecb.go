package encryption

import (
	"crypto/cipher"
	"sync"
)

// minParallelBlocks is the batch size below which ECB stays on the calling goroutine.
const minParallelBlocks = 256

// ecb is a cipher.BlockMode that transforms each block independently.
// Large batches are split across goroutines that share the read-only block cipher.
type ecb struct {
	block    cipher.Block
	decrypt  bool
	parallel int
}

func newECB(block cipher.Block, decrypt bool, parallel int) *ecb {
	return &ecb{block: block, decrypt: decrypt, parallel: parallel}
}

func (e *ecb) BlockSize() int { return e.block.BlockSize() }

// CryptBlocks transforms src into dst. dst and src must overlap entirely or not at all.
func (e *ecb) CryptBlocks(dst, src []byte) {
	size := e.block.BlockSize()

	if len(src)%size != 0 {
		panic("encryption/ecb: input not full blocks")
	}

	if len(dst) < len(src) {
		panic("encryption/ecb: output smaller than input")
	}

	blocks := len(src) / size

	if e.parallel <= 1 || blocks < minParallelBlocks {
		e.cryptRange(dst, src)

		return
	}

	perWorker := (blocks + e.parallel - 1) / e.parallel * size

	var wg sync.WaitGroup

	for start := 0; start < len(src); start += perWorker {
		end := min(start+perWorker, len(src))

		wg.Add(1)

		go func() {
			defer wg.Done()

			e.cryptRange(dst[start:end], src[start:end])
		}()
	}

	wg.Wait()
}

func (e *ecb) cryptRange(dst, src []byte) {
	size := e.block.BlockSize()

	for i := 0; i < len(src); i += size {
		if e.decrypt {
			e.block.Decrypt(dst[i:i+size], src[i:i+size])
		} else {
			e.block.Encrypt(dst[i:i+size], src[i:i+size])
		}
	}
}
