package keyvault

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/dmitrijs2005/cryptonote/internal/common"
	"github.com/dmitrijs2005/cryptonote/internal/cryptox"
)

// Key is a handle to an AES-256 key usable only for AES-GCM. The key bytes
// stay inside a memguard Enclave and are decrypted for the duration of a
// single AEAD call.
type Key struct {
	alias   string
	enclave *memguard.Enclave
}

// newKey moves raw into an enclave. raw is wiped.
func newKey(alias string, raw []byte) (*Key, error) {
	if len(raw) != cryptox.KeySize {
		common.WipeByteArray(raw)
		return nil, fmt.Errorf("%w: key %s has %d bytes, want %d", ErrKeyUnavailable, alias, len(raw), cryptox.KeySize)
	}
	return &Key{alias: alias, enclave: memguard.NewEnclave(raw)}, nil
}

// Alias returns the logical name the key was created under.
func (k *Key) Alias() string {
	return k.alias
}

// AEAD returns an AES-GCM instance over the key. The enclave is opened only
// while the cipher is built.
func (k *Key) AEAD() (cipher.AEAD, error) {
	buf, err := k.enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open enclave for %s: %v", ErrKeyUnavailable, k.alias, err)
	}
	defer buf.Destroy()

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
