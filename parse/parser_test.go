package parse

import (
	"context"
	"testing"

	"github.com/max-scw/dmc-service/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(payload string) string {
	return message.MessageEnvelope.Head + payload + message.MessageEnvelope.Tail
}

func ansiPayload(fields string) string {
	env := message.FormatEnvelopes[message.ANSIMH10]
	return env.Head + fields + env.Tail
}

func TestParseKnownFormatEnvelope(t *testing.T) {
	p := New()
	fields := "S123456" + message.GS + "18D202312011155"
	data := frame(ansiPayload(fields))

	got, err := p.Parse(data)
	require.NoError(t, err)
	require.Contains(t, got, message.ANSIMH10)
	assert.Equal(t, []string{"S123456", "18D202312011155"}, got[message.ANSIMH10])
}

func TestParseMissingMessageEnvelopeFails(t *testing.T) {
	p := New()
	_, err := p.Parse(ansiPayload("S123456"))
	require.Error(t, err)
	var merr *message.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, message.KindNoMessageEnvelope, merr.Kind)
}

func TestParseFallsBackToDefaultFormat(t *testing.T) {
	p := New(WithDefaultFormat(message.ANSIMH10))
	fields := "S123456" + message.GS + "V99"
	data := frame(fields)

	got, err := p.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"S123456", "V99"}, got[message.ANSIMH10])
}

func TestParseRejectsExcessiveFieldCount(t *testing.T) {
	p := New(WithMaxFields(1))
	fields := "S1" + message.GS + "V2"
	data := frame(ansiPayload(fields))

	_, err := p.Parse(data)
	require.Error(t, err)
}

func TestParseContextCancelled(t *testing.T) {
	p := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ParseContext(ctx, frame(ansiPayload("S1")))
	require.ErrorIs(t, err, context.Canceled)
}
