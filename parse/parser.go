package parse

import (
	"context"
	"fmt"
	"strings"

	"github.com/max-scw/dmc-service/message"
)

// Parser defines the interface for ISO/IEC 15434 message parsing.
type Parser interface {
	// Parse locates the message envelope, then every format envelope
	// nested inside it, and splits each format's payload into field
	// strings keyed by FormatName. It returns message.Error(KindNoMessageEnvelope)
	// if the mandatory message envelope is absent.
	Parse(data string) (map[message.FormatName][]string, error)

	// ParseContext is like Parse but accepts a context for cancellation of
	// large inputs.
	ParseContext(ctx context.Context, data string) (map[message.FormatName][]string, error)
}

// parser is the concrete implementation of Parser.
type parser struct {
	config parserConfig
}

// New creates a new Parser with the given options.
func New(opts ...Option) Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &parser{config: cfg}
}

// Parse implements Parser.
func (p *parser) Parse(data string) (map[message.FormatName][]string, error) {
	return p.ParseContext(context.Background(), data)
}

// ParseContext implements Parser.
func (p *parser) ParseContext(ctx context.Context, data string) (map[message.FormatName][]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	payload, err := stripEnvelope(data, message.MessageEnvelope)
	if err != nil {
		return nil, message.Wrap(message.KindNoMessageEnvelope,
			"message does not start with the ISO/IEC 15434 message envelope", err)
	}

	formatPayloads := p.findFormatEnvelopes(payload)
	if len(formatPayloads) == 0 {
		formatPayloads = map[message.FormatName]string{p.config.defaultFormat: payload}
	}

	result := make(map[message.FormatName][]string, len(formatPayloads))
	for name, fp := range formatPayloads {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		env, ok := message.FormatEnvelopes[name]
		if !ok {
			return nil, message.New(message.KindNoFormatEnvelope, "unregistered format "+string(name))
		}
		fields, err := p.splitFields(fp, env.Sep)
		if err != nil {
			return nil, err
		}
		result[name] = append(result[name], fields...)
	}
	return result, nil
}

// stripEnvelope removes env's head and tail from s, failing if either is
// absent. Per spec §4.3, envelopes are consumed using their exact byte
// sequences rather than permissive matching, so a tail byte belonging to a
// nested envelope is never mistaken for the outer tail.
func stripEnvelope(s string, env message.Envelope) (string, error) {
	if !strings.HasPrefix(s, env.Head) {
		return "", fmt.Errorf("missing envelope head %q", env.Head)
	}
	if !strings.HasSuffix(s, env.Tail) {
		return "", fmt.Errorf("missing envelope tail %q", env.Tail)
	}
	inner := s[len(env.Head) : len(s)-len(env.Tail)]
	if len(s) < len(env.Head)+len(env.Tail) {
		return "", fmt.Errorf("envelope head and tail overlap")
	}
	return inner, nil
}

// findFormatEnvelopes scans payload for every known format envelope,
// consuming occurrences greedily from left to right. For formats whose
// envelope occurs more than once, payloads are concatenated in the order
// found, each field list produced by a later step.
func (p *parser) findFormatEnvelopes(payload string) map[message.FormatName]string {
	found := make(map[message.FormatName]string)
	for name, env := range message.FormatEnvelopes {
		var sb strings.Builder
		rest := payload
		matched := false
		for {
			idx := strings.Index(rest, env.Head)
			if idx < 0 {
				break
			}
			afterHead := rest[idx+len(env.Head):]
			tailIdx := strings.Index(afterHead, env.Tail)
			if tailIdx < 0 {
				break
			}
			matched = true
			if sb.Len() > 0 {
				sb.WriteString(env.Sep)
			}
			sb.WriteString(afterHead[:tailIdx])
			rest = afterHead[tailIdx+len(env.Tail):]
		}
		if matched {
			found[name] = sb.String()
		}
	}
	return found
}

// splitFields splits payload on sep into field strings, enforcing the
// configured DoS limits. An empty field (two consecutive separators, or a
// leading/trailing separator) is preserved: spec §4.3 requires it be kept
// and flagged invalid downstream by the validator, not silently dropped.
func (p *parser) splitFields(payload, sep string) ([]string, error) {
	if sep == "" {
		return []string{payload}, nil
	}
	fields := strings.Split(payload, sep)
	if len(fields) > p.config.maxFields {
		return nil, fmt.Errorf("message exceeds maximum field count: got %d, max %d", len(fields), p.config.maxFields)
	}
	for i, f := range fields {
		if len(f) > p.config.maxFieldLength {
			return nil, fmt.Errorf("field %d exceeds maximum length: got %d, max %d", i, len(f), p.config.maxFieldLength)
		}
	}
	return fields, nil
}
