package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

var ErrUnknownHash = errors.New("crypto: unknown hash algorithm")

type Hash interface {
	String() string
	Size() int
	New() hash.Hash
}

type algorithm struct {
	name    string
	size    int
	newHash func() hash.Hash
}

func (a *algorithm) String() string { return a.name }
func (a *algorithm) Size() int      { return a.size }
func (a *algorithm) New() hash.Hash { return a.newHash() }

func mustBlake2(f func([]byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := f(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

var (
	SHA224      Hash = &algorithm{"SHA-224", 28, sha256.New224}
	SHA256      Hash = &algorithm{"SHA-256", 32, sha256.New}
	SHA384      Hash = &algorithm{"SHA-384", 48, sha512.New384}
	SHA512      Hash = &algorithm{"SHA-512", 64, sha512.New}
	SHA3_224    Hash = &algorithm{"SHA3-224", 28, func() hash.Hash { return sha3.New224() }}
	SHA3_256    Hash = &algorithm{"SHA3-256", 32, func() hash.Hash { return sha3.New256() }}
	SHA3_384    Hash = &algorithm{"SHA3-384", 48, func() hash.Hash { return sha3.New384() }}
	SHA3_512    Hash = &algorithm{"SHA3-512", 64, func() hash.Hash { return sha3.New512() }}
	SHA512_224  Hash = &algorithm{"SHA-512/224", 28, sha512.New512_224}
	SHA512_256  Hash = &algorithm{"SHA-512/256", 32, sha512.New512_256}
	BLAKE2s_256 Hash = &algorithm{"BLAKE2s-256", 32, mustBlake2(blake2s.New256)}
	BLAKE2b_256 Hash = &algorithm{"BLAKE2b-256", 32, mustBlake2(blake2b.New256)}
	BLAKE2b_384 Hash = &algorithm{"BLAKE2b-384", 48, mustBlake2(blake2b.New384)}
	BLAKE2b_512 Hash = &algorithm{"BLAKE2b-512", 64, mustBlake2(blake2b.New512)}
	Keccak256   Hash = &algorithm{"Keccak256", 32, sha3.NewLegacyKeccak256} // Legacy
	Keccak512   Hash = &algorithm{"Keccak512", 64, sha3.NewLegacyKeccak512} // Legacy
)

// Hashes lists every supported algorithm in display order.
var Hashes = []Hash{
	SHA224, SHA256, SHA384, SHA512,
	SHA3_224, SHA3_256, SHA3_384, SHA3_512,
	SHA512_224, SHA512_256,
	BLAKE2s_256, BLAKE2b_256, BLAKE2b_384, BLAKE2b_512,
	Keccak256, Keccak512,
}

func normalizeName(name string) string {
	return strings.NewReplacer("-", "", "_", "", "/", "").Replace(strings.ToLower(name))
}

// HashByName looks an algorithm up by name. Case, dashes, underscores and
// slashes are ignored so "sha256", "SHA-256" and "sha_256" are equivalent.
func HashByName(name string) (Hash, error) {
	n := normalizeName(name)
	for _, h := range Hashes {
		if normalizeName(h.String()) == n {
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownHash, name)
}

// Digest hashes everything read from r.
func Digest(h Hash, r io.Reader) ([]byte, error) {
	hh := h.New()
	if _, err := io.Copy(hh, r); err != nil {
		return nil, err
	}
	return hh.Sum(nil), nil
}

// HashName is a flag and config value holding an algorithm.
type HashName struct {
	Hash
}

func (n HashName) MarshalText() ([]byte, error) {
	if n.Hash == nil {
		return []byte{}, nil
	}
	return []byte(n.Hash.String()), nil
}

func (n *HashName) UnmarshalText(text []byte) error {
	h, err := HashByName(string(text))
	if err != nil {
		return err
	}
	n.Hash = h
	return nil
}

func (n HashName) String() string {
	if n.Hash == nil {
		return ""
	}
	return n.Hash.String()
}
