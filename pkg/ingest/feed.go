package ingest

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/sub"

	// Register all transports
	_ "go.nanomsg.org/mangos/v3/transport/all"

	"github.com/basketlab/copurchase/pkg/graph"
	"github.com/basketlab/copurchase/pkg/logging"
)

// feedRecvDeadline bounds each Recv so Stop is seen promptly.
const feedRecvDeadline = 500 * time.Millisecond

// FeedSubscriber applies live transactions published on a SUB socket to the
// store. Messages are JSON-encoded Transaction values. The publisher is
// expected to have deduplicated items, like every other ingestion source.
type FeedSubscriber struct {
	store  *graph.Store
	logger logging.Logger
	url    string

	sock mangos.Socket

	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex

	applied atomic.Uint64
	dropped atomic.Uint64
}

// NewFeedSubscriber creates a subscriber dialing the given broker URL
// (for example "tcp://broker:40899").
func NewFeedSubscriber(url string, store *graph.Store, logger logging.Logger) *FeedSubscriber {
	return &FeedSubscriber{
		store:  store,
		logger: logger.With(logging.Component("feed")),
		url:    url,
		stopCh: make(chan struct{}),
	}
}

// Start dials the broker and begins applying transactions.
func (f *FeedSubscriber) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return fmt.Errorf("feed subscriber already running")
	}

	sock, err := sub.NewSocket()
	if err != nil {
		return fmt.Errorf("create sub socket: %w", err)
	}
	if err := sock.SetOption(mangos.OptionSubscribe, []byte("")); err != nil {
		sock.Close()
		return fmt.Errorf("subscribe: %w", err)
	}
	if err := sock.SetOption(mangos.OptionRecvDeadline, feedRecvDeadline); err != nil {
		sock.Close()
		return fmt.Errorf("set recv deadline: %w", err)
	}
	if err := sock.Dial(f.url); err != nil {
		sock.Close()
		return fmt.Errorf("dial %s: %w", f.url, err)
	}

	f.sock = sock
	f.running = true
	f.wg.Add(1)
	go f.recvLoop()

	f.logger.Info("feed subscriber started", logging.String("url", f.url))
	return nil
}

// Stop terminates the receive loop and closes the socket.
func (f *FeedSubscriber) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	f.running = false
	close(f.stopCh)
	f.mu.Unlock()

	f.wg.Wait()
	f.sock.Close()
	f.logger.Info("feed subscriber stopped",
		logging.Uint64("applied", f.applied.Load()),
		logging.Uint64("dropped", f.dropped.Load()))
}

func (f *FeedSubscriber) recvLoop() {
	defer f.wg.Done()

	for {
		select {
		case <-f.stopCh:
			return
		default:
		}

		msg, err := f.sock.Recv()
		if err != nil {
			if err == mangos.ErrRecvTimeout {
				continue
			}
			f.logger.Warn("feed receive failed", logging.Error(err))
			continue
		}

		var tx Transaction
		if err := json.Unmarshal(msg, &tx); err != nil {
			f.dropped.Add(1)
			f.logger.Warn("dropping malformed feed message", logging.Error(err))
			continue
		}

		f.store.AddTransaction(tx.Items)
		f.applied.Add(1)
	}
}

// Applied returns the number of transactions applied since Start.
func (f *FeedSubscriber) Applied() uint64 {
	return f.applied.Load()
}
