// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/cinedex/internal/core/movie"
)

// Action names the roster verb that produced a [Change].
type Action string

const (
	ActionReplaced Action = "replaced"
	ActionAdded    Action = "added"
	ActionRemoved  Action = "removed"
	ActionCleared  Action = "cleared"
)

// Change is published after a roster mutation commits.
type Change struct {
	MovieID int64          `json:"movie_id"`
	Role    movie.RoleType `json:"role"`
	Action  Action         `json:"action"`
	// Size is the roster length after the mutation.
	Size int `json:"size"`
}

// Notifier announces committed roster changes.
type Notifier interface {
	Notify(context context.Context, change Change) error
}

// publisher is the subset of [redis.Client] the notifier needs.
type publisher interface {
	Publish(context context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes each [Change] as JSON on a Redis pub/sub channel.
type RedisNotifier struct {
	client  publisher
	channel string
}

// NewRedisNotifier constructs a notifier publishing on channel.
func NewRedisNotifier(client publisher, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

// Notify implements [Notifier].
func (notifier *RedisNotifier) Notify(context context.Context, change Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("roster: encode change: %w", err)
	}

	if err := notifier.client.Publish(context, notifier.channel, payload).Err(); err != nil {
		return fmt.Errorf("roster: publish to %s: %w", notifier.channel, err)
	}
	return nil
}
