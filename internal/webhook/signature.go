package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// DefaultTolerance bounds how old a signed payload may be before it is
// rejected as a possible replay.
const DefaultTolerance = 5 * time.Minute

var ErrInvalidSignature = errors.New("webhook signature verification failed")

// VerifySignature checks a gateway signature header of the form
// "t=<unix>,v1=<hex>,v1=<hex>..." against the raw payload. The signed message
// is "<t>.<payload>" and the scheme is HMAC-SHA256 with the shared webhook
// secret. Any parse failure, stale timestamp or digest mismatch yields
// ErrInvalidSignature; the caller must not process the payload in that case.
func VerifySignature(payload []byte, header, secret string, tolerance time.Duration) error {
	timestamp, signatures, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	if tolerance > 0 {
		age := time.Since(time.Unix(timestamp, 0))
		if age > tolerance || age < -tolerance {
			return ErrInvalidSignature
		}
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, sig := range signatures {
		decoded, decodeErr := hex.DecodeString(sig)
		if decodeErr != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return ErrInvalidSignature
}

func parseSignatureHeader(header string) (int64, []string, error) {
	var timestamp int64
	var haveTimestamp bool
	var signatures []string

	for _, element := range strings.Split(header, ",") {
		parts := strings.SplitN(strings.TrimSpace(element), "=", 2)
		if len(parts) != 2 {
			continue
		}
		switch parts[0] {
		case "t":
			ts, err := strconv.ParseInt(parts[1], 10, 64)
			if err != nil {
				return 0, nil, ErrInvalidSignature
			}
			timestamp = ts
			haveTimestamp = true
		case "v1":
			signatures = append(signatures, parts[1])
		}
	}

	if !haveTimestamp || len(signatures) == 0 {
		return 0, nil, ErrInvalidSignature
	}

	return timestamp, signatures, nil
}
