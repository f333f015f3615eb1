package auth

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Request header names used by the Kalshi API.
const (
	HeaderKey       = "KALSHI-ACCESS-KEY"
	HeaderSignature = "KALSHI-ACCESS-SIGNATURE"
	HeaderTimestamp = "KALSHI-ACCESS-TIMESTAMP"
)

// SigningError indicates the private key material is malformed or unusable.
// It is fatal for a run: without a working key no order can be authenticated.
type SigningError struct {
	Reason string
	Err    error
}

func (e *SigningError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("signing: %s: %v", e.Reason, e.Err)
	}
	return "signing: " + e.Reason
}

func (e *SigningError) Unwrap() error { return e.Err }

// Credentials holds the API key ID and private key for signing requests.
// Read-only once loaded.
type Credentials struct {
	KeyID      string          // API key ID from the Kalshi dashboard
	PrivateKey *rsa.PrivateKey // RSA private key for signing
}

// Load builds Credentials from inline PEM data or, when that is empty, a key
// file path. At least one source must be provided.
func Load(keyID, pemData, pemPath string) (*Credentials, error) {
	if keyID == "" {
		return nil, &SigningError{Reason: "API key ID is required"}
	}

	var (
		key *rsa.PrivateKey
		err error
	)
	switch {
	case pemData != "":
		key, err = ParsePrivateKey([]byte(pemData))
	case pemPath != "":
		key, err = LoadPrivateKey(pemPath)
	default:
		return nil, &SigningError{Reason: "private key PEM or key file path is required"}
	}
	if err != nil {
		return nil, err
	}

	return &Credentials{KeyID: keyID, PrivateKey: key}, nil
}

// LoadPrivateKey loads an RSA private key from a PEM file.
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SigningError{Reason: "read key file", Err: err}
	}
	return ParsePrivateKey(data)
}

// ParsePrivateKey decodes PEM-encoded RSA key material, accepting PKCS#8 and
// the older PKCS#1 encoding.
func ParsePrivateKey(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, &SigningError{Reason: "no PEM block in key material"}
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, &SigningError{Reason: "key is not an RSA private key"}
		}
		return rsaKey, nil
	}

	rsaKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, &SigningError{Reason: "parse private key", Err: err}
	}
	return rsaKey, nil
}

// Headers returns the authentication headers for a request signed at the
// current time.
func (c *Credentials) Headers(method, path string) (map[string]string, error) {
	timestampMs := time.Now().UnixMilli()

	signature, err := c.Sign(timestampMs, method, path)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		HeaderKey:       c.KeyID,
		HeaderTimestamp: strconv.FormatInt(timestampMs, 10),
		HeaderSignature: signature,
	}, nil
}

// Sign produces a base64 RSA-PSS signature over timestampMs + method + path.
// Any query string on path is stripped first: the exchange signs the bare
// path only, never query parameters or the body.
//
// PSS is randomized, so two signatures over the same message differ
// byte-for-byte; both verify.
func (c *Credentials) Sign(timestampMs int64, method, path string) (string, error) {
	path, _, _ = strings.Cut(path, "?")
	message := strconv.FormatInt(timestampMs, 10) + method + path

	hashed := sha256.Sum256([]byte(message))

	signature, err := rsa.SignPSS(
		rand.Reader,
		c.PrivateKey,
		crypto.SHA256,
		hashed[:],
		&rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash},
	)
	if err != nil {
		return "", &SigningError{Reason: "sign message", Err: err}
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}
