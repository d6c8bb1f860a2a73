package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"linkcut/internal/apperr"
	"linkcut/internal/repository"
)

// Collision handling: a fresh code is drawn and re-checked against storage
// a bounded number of times, then the request fails deterministically.
const shortCodeMaxRetries = 5

var errShortCodeTaken = errors.New("short code already taken")

// generateShortCode generates a random 8-character short code
func generateShortCode() (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	// Encode to base64 URL-safe string and take first 8 characters
	encoded := base64.URLEncoding.EncodeToString(bytes)
	return encoded[:8], nil
}

// uniqueShortCode produces a short code not present in storage
func uniqueShortCode(repo repository.URLRepository) (string, error) {
	var code string

	backoff := retry.WithMaxRetries(shortCodeMaxRetries, retry.NewConstant(10*time.Millisecond))
	err := retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		candidate, err := generateShortCode()
		if err != nil {
			return err
		}

		_, err = repo.FindByShortCode(candidate)
		if errors.Is(err, apperr.ErrNotFound) {
			code = candidate
			return nil
		}
		if err != nil {
			return err
		}
		return retry.RetryableError(errShortCodeTaken)
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate unique short code: %w", err)
	}

	return code, nil
}
