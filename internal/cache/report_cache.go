package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedReport is a scored report together with the user who owns it. The report is
// kept as the JSON the API serves so a hit can be written straight to the response.
type CachedReport struct {
	UserID string          `json:"userId"`
	QuizID string          `json:"quizId"`
	Report json.RawMessage `json:"report"`
}

// ReportCache holds scored reports by submission id
type ReportCache interface {
	Get(ctx context.Context, submissionID string) (*CachedReport, error)
	Set(ctx context.Context, submissionID, userID, quizID string, report interface{}) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client, ttl time.Duration) ReportCache {
	return &reportCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *reportCache) key(submissionID string) string {
	return fmt.Sprintf("report:%s", submissionID)
}

func (c *reportCache) Get(ctx context.Context, submissionID string) (*CachedReport, error) {
	data, err := c.client.Get(ctx, c.key(submissionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cr CachedReport
	if err := json.Unmarshal([]byte(data), &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

func (c *reportCache) Set(ctx context.Context, submissionID, userID, quizID string, report interface{}) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	data, err := json.Marshal(&CachedReport{UserID: userID, QuizID: quizID, Report: raw})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(submissionID), data, c.ttl).Err()
}
