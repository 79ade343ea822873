package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"helpdeskbot/internal/config"
)

const connectionTimeout = 5 * time.Second

// redisStore implements Store on a Redis backend. Ticket expiry relies on
// Redis' native TTL, so reads after the TTL window observe absence without
// any sweeping on our side.
type redisStore struct {
	client    *redis.Client
	ticketTTL time.Duration
	logger    *slog.Logger
}

// NewRedisStore connects to the configured Redis backend and verifies the
// connection with a bounded ping.
func NewRedisStore(cfg config.StoreConfig, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	logger.Info("Connected to key-value store", "addr", cfg.Addr, "db", cfg.DB, "ticket_ttl", cfg.TicketTTL)

	return &redisStore{
		client:    client,
		ticketTTL: cfg.TicketTTL,
		logger:    logger.With("component", "store"),
	}, nil
}

func ticketKey(forwardedID int) string {
	return "ticket:" + strconv.Itoa(forwardedID)
}

func langKey(chatID int64) string {
	return "lang:" + strconv.FormatInt(chatID, 10)
}

// PutTicket records the forwarded-message correlation with the ticket TTL.
func (s *redisStore) PutTicket(ctx context.Context, forwardedID int, originChatID int64) error {
	value := strconv.FormatInt(originChatID, 10)
	if err := s.client.Set(ctx, ticketKey(forwardedID), value, s.ticketTTL).Err(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to write ticket record",
			"forwarded_message_id", forwardedID, "origin_chat_id", originChatID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.logger.DebugContext(ctx, "Ticket record written",
		"forwarded_message_id", forwardedID, "origin_chat_id", originChatID)
	return nil
}

// GetTicket looks up a forwarded message's origin chat.
func (s *redisStore) GetTicket(ctx context.Context, forwardedID int) (int64, bool, error) {
	value, err := s.client.Get(ctx, ticketKey(forwardedID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to read ticket record",
			"forwarded_message_id", forwardedID, "error", err)
		return 0, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	originChatID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// A malformed value is unreachable through normal writes; treat it
		// as a miss rather than failing the agent's reply.
		s.logger.WarnContext(ctx, "Discarding malformed ticket record",
			"forwarded_message_id", forwardedID, "value", value)
		return 0, false, nil
	}

	return originChatID, true, nil
}

// SetLanguage stores a chat's language preference with no expiry.
func (s *redisStore) SetLanguage(ctx context.Context, chatID int64, code string) error {
	if err := s.client.Set(ctx, langKey(chatID), code, 0).Err(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to write language preference",
			"chat_id", chatID, "language", code, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.logger.DebugContext(ctx, "Language preference written", "chat_id", chatID, "language", code)
	return nil
}

// GetLanguage returns a chat's stored language preference.
func (s *redisStore) GetLanguage(ctx context.Context, chatID int64) (string, bool, error) {
	code, err := s.client.Get(ctx, langKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to read language preference", "chat_id", chatID, "error", err)
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return code, true, nil
}

// Ping checks the backend connection.
func (s *redisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *redisStore) Close() error {
	return s.client.Close()
}
