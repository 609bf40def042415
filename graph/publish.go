package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// DefaultIngestSubject is the subject schema concept sets are published to.
const DefaultIngestSubject = "graph.ingest.schema"

// WireTriple is the JSON shape of one triple on the ingest subject.
type WireTriple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	Literal   bool   `json:"literal,omitempty"`
	Lang      string `json:"lang,omitempty"`
}

// SchemaIngestMessage is the message format for graph ingestion of a
// materialized schema. The run ID makes repeated publishes of the same
// namespace distinguishable downstream.
type SchemaIngestMessage struct {
	ID        string       `json:"id"`
	RunID     string       `json:"run_id"`
	Triples   []WireTriple `json:"triples"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PublishConcepts publishes the sealed triple set to a graph ingest subject.
// A nil connection is a no-op so callers can treat publishing as optional.
// Triples go out in canonical order.
func PublishConcepts(ctx context.Context, nc *nats.Conn, subject, namespace string, set *Set) error {
	if nc == nil {
		return nil
	}
	if subject == "" {
		subject = DefaultIngestSubject
	}

	sorted := set.Triples()
	wire := make([]WireTriple, 0, len(sorted))
	for _, t := range sorted {
		wire = append(wire, WireTriple{
			Subject:   t.Subject,
			Predicate: t.Predicate,
			Object:    t.Object.Value,
			Literal:   t.Object.Literal,
			Lang:      t.Object.Lang,
		})
	}

	msg := SchemaIngestMessage{
		ID:        namespace,
		RunID:     uuid.New().String(),
		Triples:   wire,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal schema ingest message: %w", err)
	}

	if err := nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish schema ingest message: %w", err)
	}
	if err := nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush schema ingest message: %w", err)
	}
	return nil
}
