package beacon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"lottery_backend/internal/model"
	"time"

	"golang.org/x/crypto/sha3"
)

const nonceSize = 32

// blockHash - keccak256(prevHash || height || timestamp || nonce)
func blockHash(prevHash []byte, height uint64, createdAt time.Time, nonce []byte) []byte {
	var buf [8]byte

	h := sha3.NewLegacyKeccak256()
	h.Write(prevHash)
	binary.BigEndian.PutUint64(buf[:], height)
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(createdAt.UnixNano()))
	h.Write(buf[:])
	h.Write(nonce)

	return h.Sum(nil)
}

// Verify - проверяет, что блоки идут подряд и каждый хэш пересчитывается из своих полей
func Verify(blocks []model.Block) error {
	for i, b := range blocks {
		if len(b.Nonce) != nonceSize {
			return fmt.Errorf("block %d: nonce size %d", b.Height, len(b.Nonce))
		}
		if !bytes.Equal(b.Hash, blockHash(b.PrevHash, b.Height, b.CreatedAt, b.Nonce)) {
			return fmt.Errorf("block %d: hash mismatch", b.Height)
		}
		if i == 0 {
			continue
		}

		prev := blocks[i-1]
		if b.Height != prev.Height+1 {
			return fmt.Errorf("block %d: expected height %d", b.Height, prev.Height+1)
		}
		if !bytes.Equal(b.PrevHash, prev.Hash) {
			return fmt.Errorf("block %d: broken link to %d", b.Height, prev.Height)
		}
	}
	return nil
}
