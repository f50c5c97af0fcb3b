package ingest

import (
	"encoding/json"
	"io"
	"testing"
	"time"

	"go.nanomsg.org/mangos/v3/protocol/pub"

	"github.com/basketlab/copurchase/pkg/graph"
	"github.com/basketlab/copurchase/pkg/logging"
)

func TestFeedSubscriber_AppliesTransactions(t *testing.T) {
	const url = "inproc://feed-test"

	publisher, err := pub.NewSocket()
	if err != nil {
		t.Fatalf("create pub socket: %v", err)
	}
	defer publisher.Close()
	if err := publisher.Listen(url); err != nil {
		t.Fatalf("listen: %v", err)
	}

	store := graph.New()
	logger := logging.NewJSONLogger(io.Discard, logging.ErrorLevel)
	sub := NewFeedSubscriber(url, store, logger)
	if err := sub.Start(); err != nil {
		t.Fatalf("start subscriber: %v", err)
	}
	defer sub.Stop()

	// Give the SUB socket a moment to complete the connection handshake.
	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(Transaction{Key: "1_d", Items: []string{"milk", "yogurt"}})
	if err := publisher.Send(payload); err != nil {
		t.Fatalf("publish: %v", err)
	}
	publisher.Send([]byte("not json")) // must be dropped, not crash the loop

	deadline := time.Now().Add(3 * time.Second)
	for sub.Applied() < 1 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}

	if sub.Applied() != 1 {
		t.Fatalf("applied = %d, want 1", sub.Applied())
	}
	if got := store.Weight("milk", "yogurt"); got != 1 {
		t.Errorf("Weight(milk, yogurt) = %d, want 1", got)
	}
}

func TestFeedSubscriber_DoubleStart(t *testing.T) {
	const url = "inproc://feed-double-start"

	publisher, err := pub.NewSocket()
	if err != nil {
		t.Fatalf("create pub socket: %v", err)
	}
	defer publisher.Close()
	if err := publisher.Listen(url); err != nil {
		t.Fatalf("listen: %v", err)
	}

	store := graph.New()
	logger := logging.NewJSONLogger(io.Discard, logging.ErrorLevel)
	sub := NewFeedSubscriber(url, store, logger)

	if err := sub.Start(); err != nil {
		t.Fatalf("first start: %v", err)
	}
	defer sub.Stop()

	if err := sub.Start(); err == nil {
		t.Fatal("second Start should fail while running")
	}
}
