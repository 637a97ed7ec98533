// Package clob streams live price updates for outcome tokens from the
// Polymarket CLOB websocket market channel.
package clob

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"polymarket_explorer/internal/apperr"
	"polymarket_explorer/internal/infra"

	"github.com/gorilla/websocket"
)

const (
	maxRetries   = 10
	pingInterval = 30 * time.Second
	readTimeout  = 60 * time.Second
	dialTimeout  = 10 * time.Second
	snippetMax   = 200
)

// PriceUpdate is one live price event for an outcome token.
type PriceUpdate struct {
	AssetID   string
	EventType string
	Price     string
	Timestamp string
}

// subscribeRequest is the CLOB market-channel subscription message.
type subscribeRequest struct {
	AssetIDs []string `json:"assets_ids"`
	Type     string   `json:"type"`
}

// marketEvent is the raw frame shape on the market channel.
type marketEvent struct {
	EventType string `json:"event_type"`
	AssetID   string `json:"asset_id"`
	Price     string `json:"price"`
	Timestamp string `json:"timestamp"`
}

// Watcher maintains a subscription for a set of outcome tokens and calls
// onUpdate for every price event.
type Watcher struct {
	wsURL    string
	onUpdate func(PriceUpdate)
	logger   *slog.Logger
}

// NewWatcher creates a watcher for the given CLOB websocket endpoint.
func NewWatcher(wsURL string, onUpdate func(PriceUpdate)) *Watcher {
	return &Watcher{
		wsURL:    wsURL,
		onUpdate: onUpdate,
		logger:   slog.Default().With("module", "clob_watcher"),
	}
}

// Watch subscribes to the given token ids and streams updates until ctx is
// cancelled. Connection loss is retried with backoff; when retries are
// exhausted the last failure is returned, promoted.
func (w *Watcher) Watch(ctx context.Context, tokenIDs []string) error {
	retryCount := 0

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		err := w.watchOnce(ctx, tokenIDs)
		if err == nil {
			return nil // clean shutdown
		}
		if retryCount >= maxRetries {
			return err
		}

		delay := infra.CalculateBackoff(retryCount)
		retryCount++
		w.logger.Warn("CLOB connection lost, reconnecting",
			slog.Any("error", err), slog.Int("retry", retryCount), slog.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}
}

// watchOnce runs a single connect/subscribe/read cycle.
func (w *Watcher) watchOnce(ctx context.Context, tokenIDs []string) error {
	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	conn, _, err := dialer.DialContext(ctx, w.wsURL, nil)
	if err != nil {
		return apperr.HTTP(&apperr.ConnectionFailed{URL: w.wsURL, Reason: err.Error()})
	}
	defer conn.Close()

	if err := conn.WriteJSON(subscribeRequest{AssetIDs: tokenIDs, Type: "market"}); err != nil {
		return apperr.HTTP(&apperr.ConnectionFailed{URL: w.wsURL, Reason: "subscribe failed: " + err.Error()})
	}
	w.logger.Info("subscribed to market channel", slog.Int("tokens", len(tokenIDs)))

	// Keepalive pings so the server does not drop an idle subscription.
	pingCtx, cancelPing := context.WithCancel(ctx)
	defer cancelPing()
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-pingCtx.Done():
				return
			case <-ticker.C:
				conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		conn.SetReadDeadline(time.Now().Add(readTimeout))
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return apperr.HTTP(&apperr.ResponseReadError{URL: w.wsURL, Reason: err.Error()})
		}

		updates, err := parseFrame(frame)
		if err != nil {
			// One malformed frame should not kill the stream.
			w.logger.Warn("skipping malformed frame", slog.Any("error", err))
			continue
		}
		for _, update := range updates {
			w.onUpdate(update)
		}
	}
}

// parseFrame decodes one market-channel frame. Frames may carry either a
// single event or an array of events.
func parseFrame(frame []byte) ([]PriceUpdate, error) {
	var events []marketEvent
	if err := json.Unmarshal(frame, &events); err != nil {
		var single marketEvent
		if err := json.Unmarshal(frame, &single); err != nil {
			return nil, apperr.Parse(&apperr.JSONDeserializationFailed{
				ExpectedType: "market channel event",
				JSONSnippet:  apperr.JSONErrorSnippet(string(frame), snippetMax),
				Reason:       err.Error(),
			})
		}
		events = []marketEvent{single}
	}

	updates := make([]PriceUpdate, 0, len(events))
	for _, ev := range events {
		if ev.EventType == "" {
			return nil, apperr.Parse(&apperr.MissingField{
				FieldName:  "event_type",
				ParentType: "market channel event",
			})
		}
		updates = append(updates, PriceUpdate{
			AssetID:   ev.AssetID,
			EventType: ev.EventType,
			Price:     ev.Price,
			Timestamp: ev.Timestamp,
		})
	}
	return updates, nil
}
