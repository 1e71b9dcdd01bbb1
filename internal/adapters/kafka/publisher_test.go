package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgtracker/internal/domain"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublishAssessmentSaved(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{w: w}
	ev := domain.AssessmentEvent{
		ID:           "evt-1",
		Type:         domain.EventAssessmentSaved,
		CompanyID:    42,
		AssessmentID: 7,
		Scores:       domain.DimensionResult{E: 72, S: 78, G: 83, Total: 78},
		OccurredAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.PublishAssessmentSaved(context.Background(), ev))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "42", string(w.msgs[0].Key))
	assert.Equal(t, "assessment.saved", string(w.msgs[0].Headers[0].Value))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, float64(7), decoded["assessmentId"])
	assert.Equal(t, float64(78), decoded["scores"].(map[string]any)["total"])
}

func TestPublishWrapsWriterError(t *testing.T) {
	p := &Publisher{w: &fakeWriter{err: errors.New("no brokers")}}
	err := p.PublishAssessmentSaved(context.Background(), domain.AssessmentEvent{CompanyID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no brokers")
}

func TestWriterHashesByCompanyKey(t *testing.T) {
	w := newWriter([]string{"localhost:9092"}, "esg.assessments")
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.Equal(t, batchTimeout, w.BatchTimeout)

	partitions := map[int]bool{}
	for i := 0; i < 6; i++ {
		partitions[w.Balancer.Balance(kafka.Message{Key: []byte("42")}, 0, 1, 2)] = true
	}
	assert.Len(t, partitions, 1)
}
