package out

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"plant/internal/modules/widget/domain"
	widgetout "plant/internal/modules/widget/port/out"
)

const (
	natsConnectTimeout = 2 * time.Second
	natsPutTimeout     = 2 * time.Second
	natsSnapshotKey    = "snapshot"
)

// NATSKVSink mirrors the widget pairs into a JetStream key/value bucket.
type NATSKVSink struct {
	conn   *nats.Conn
	kv     jetstream.KeyValue
	bucket string
}

func NewNATSKVSink(ctx context.Context, url, bucket string) (*NATSKVSink, error) {
	conn, err := nats.Connect(url, nats.Timeout(natsConnectTimeout), nats.Name("plant"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}
	kv, err := js.KeyValue(ctx, bucket)
	if err != nil {
		kv, err = js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket:      bucket,
			Description: "Plant hydration widget values",
			History:     1,
		})
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("create kv bucket %s: %w", bucket, err)
		}
	}
	return &NATSKVSink{conn: conn, kv: kv, bucket: bucket}, nil
}

var _ widgetout.Sink = (*NATSKVSink)(nil)

func (s *NATSKVSink) Name() string { return "nats:" + s.bucket }

func (s *NATSKVSink) Put(ctx context.Context, snapshot domain.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, natsPutTimeout)
	defer cancel()
	for key, value := range snapshot.Pairs() {
		if _, err := s.kv.Put(ctx, key, []byte(strconv.FormatFloat(value, 'f', -1, 64))); err != nil {
			return fmt.Errorf("put %s: %w", key, err)
		}
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if _, err := s.kv.Put(ctx, natsSnapshotKey, raw); err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

func (s *NATSKVSink) Close() error {
	s.conn.Close()
	return nil
}
