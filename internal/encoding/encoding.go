// Package encoding computes one-way digests of credential strings and files.
// The account store uses SHA256 hex exclusively; the remaining algorithms are
// exposed for the standalone hash utility.
package encoding

import (
	"bufio"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// ErrUnsupportedAlgorithm is returned when the runtime cannot provide the
// requested digest algorithm.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Algorithm identifies a digest algorithm from the closed supported set.
type Algorithm string

const (
	MD2    Algorithm = "md2"
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

// ParseAlgorithm maps a user-supplied name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case MD2:
		return MD2, nil
	case MD5:
		return MD5, nil
	case SHA1:
		return SHA1, nil
	case SHA256:
		return SHA256, nil
	case SHA384:
		return SHA384, nil
	case SHA512:
		return SHA512, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// newHash returns a fresh hash.Hash for alg. MD2 is part of the closed set
// but has no Go implementation, so it maps to ErrUnsupportedAlgorithm.
func newHash(alg Algorithm) (hash.Hash, error) {
	switch alg {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
}

// Hash computes the digest of secret with alg. Deterministic, no side
// effects; the plaintext is not retained beyond the call.
func Hash(secret string, alg Algorithm) ([]byte, error) {
	h, err := newHash(alg)
	if err != nil {
		return nil, err
	}
	h.Write([]byte(secret))
	return h.Sum(nil), nil
}

// HashFile streams the file at path through alg and returns the digest.
func HashFile(path string, alg Algorithm) ([]byte, error) {
	h, err := newHash(alg)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(h, bufio.NewReader(f)); err != nil {
		return nil, fmt.Errorf("hash %s: %w", path, err)
	}
	return h.Sum(nil), nil
}

// ToHex renders a digest as a lowercase hex string.
func ToHex(digest []byte) string {
	return hex.EncodeToString(digest)
}

// ToBase64 renders a digest as a standard base64 string.
func ToBase64(digest []byte) string {
	return base64.StdEncoding.EncodeToString(digest)
}
