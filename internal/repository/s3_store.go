package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"shoplist/internal/config"
	"shoplist/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// s3API is the subset of the S3 client used by s3Store.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Store implements SlotStore as one JSON object in S3. Keeping every slot
// in the same object makes PutAll a single PutObject call.
type s3Store struct {
	mu     sync.Mutex
	client s3API
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Store creates an S3-backed slot store keeping its slots in
// <prefix><object> of the configured bucket.
func NewS3Store(ctx context.Context, cfg config.S3Config, object string, logger zerolog.Logger) (SlotStore, error) {
	logger = logger.With().Str("repository", "s3-slots").Logger()

	// Load AWS configuration
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	logger.Info().
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Str("key", cfg.Prefix+object).
		Msg("S3 slot store initialised")

	return newS3Store(client, cfg.Bucket, cfg.Prefix+object, logger), nil
}

func newS3Store(client s3API, bucket, key string, logger zerolog.Logger) *s3Store {
	return &s3Store{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// Get returns the value stored under key.
func (s *s3Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	v, ok := slots[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// PutAll merges slots into the object and uploads it in one request.
func (s *s3Store) PutAll(ctx context.Context, slots map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read(ctx)
	if errors.Is(err, model.ErrSnapshotCorrupt) {
		s.logger.Warn().Err(err).Str("bucket", s.bucket).Str("key", s.key).Msg("replacing malformed slot object")
		current = make(map[string][]byte)
	} else if err != nil {
		return err
	}
	for k, v := range slots {
		current[k] = v
	}

	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to encode slot object: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to put object to S3")
		return fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}

	s.logger.Debug().Int("slots", len(current)).Msg("slot object written")
	return nil
}

// Close is a no-op; the SDK client holds no connections that need closing.
func (s *s3Store) Close() error {
	return nil
}

// read downloads and decodes the slot object. A missing object is empty; an
// object that does not decode yields an error wrapping model.ErrSnapshotCorrupt.
func (s *s3Store) read(ctx context.Context) (map[string][]byte, error) {
	slots := make(map[string][]byte)

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return slots, nil
		}
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object %s: %w", s.key, err)
	}
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode S3 object %s: %v", model.ErrSnapshotCorrupt, s.key, err)
	}
	return slots, nil
}
