package scoring

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"scoring-gateway/internal/platform/config"
)

// Person holds the validated profile facts a score is computed from.
type Person struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Birthday  time.Time
	Gender    *int64
}

// GetScore returns the score for a person. The result is looked up in the
// store's cache first; on a miss it is computed from which facts are present
// and written back with a bounded TTL. Cache failures degrade to
// recomputation and never fail the lookup.
func GetScore(ctx context.Context, store Store, p Person) float64 {
	key := scoreKey(p)
	if cached, ok := store.CacheGet(ctx, key); ok {
		if score, err := strconv.ParseFloat(cached, 64); err == nil {
			return score
		}
	}

	var score float64
	if p.Phone != "" {
		score += 1.5
	}
	if p.Email != "" {
		score += 1.5
	}
	if !p.Birthday.IsZero() && p.Gender != nil && *p.Gender != 0 {
		score += 1.5
	}
	if p.FirstName != "" && p.LastName != "" {
		score += 0.5
	}

	store.CacheSet(ctx, key, strconv.FormatFloat(score, 'f', -1, 64), config.ScoreCacheTTL)
	return score
}

// GetInterests returns the interest list stored for a client id. A missing
// key yields an empty list; store or decode failures surface as errors.
func GetInterests(ctx context.Context, store Store, clientID int64) ([]string, error) {
	raw, err := store.Get(ctx, interestsKey(clientID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []string{}, nil
	}
	var interests []string
	if err := json.Unmarshal([]byte(raw), &interests); err != nil {
		return nil, fmt.Errorf("decode interests for client %d: %w", clientID, err)
	}
	return interests, nil
}

func scoreKey(p Person) string {
	birthday := ""
	if !p.Birthday.IsZero() {
		birthday = p.Birthday.Format("20060102")
	}
	sum := md5.Sum([]byte(p.FirstName + p.LastName + p.Phone + birthday))
	return "uid:" + hex.EncodeToString(sum[:])
}

func interestsKey(clientID int64) string {
	return "i:" + strconv.FormatInt(clientID, 10)
}
