package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hazyhaar/skelwatch/skeleton"
)

func testCapture() skeleton.Capture {
	return skeleton.Capture{
		ID:         "cap-1",
		PageURL:    "https://example.com",
		Tag:        "div",
		Markup:     `<div class="flex flex-col gap-2 w-full" style="height:10px"></div>`,
		MarkupHash: "abc",
		Timestamp:  1234,
	}
}

func TestStdout_JSONLines(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdout(&buf)

	if err := s.Send(context.Background(), testCapture()); err != nil {
		t.Fatalf("send: %v", err)
	}

	var env struct {
		Type string           `json:"type"`
		Data skeleton.Capture `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if env.Type != "capture" || env.Data.ID != "cap-1" {
		t.Errorf("envelope: got %+v", env)
	}
}

type failSink struct{ err error }

func (f *failSink) Send(context.Context, skeleton.Capture) error { return f.err }
func (f *failSink) Close() error                                 { return nil }

func TestRouter_FanOutContinuesPastErrors(t *testing.T) {
	var delivered []skeleton.Capture
	ok := NewCallback(func(_ context.Context, c skeleton.Capture) error {
		delivered = append(delivered, c)
		return nil
	})
	boom := &failSink{err: errors.New("down")}

	r := NewRouter(nil, boom, ok)
	err := r.Send(context.Background(), testCapture())

	if err == nil {
		t.Error("router should return the first sink error")
	}
	if len(delivered) != 1 {
		t.Errorf("second sink deliveries: got %d, want 1", len(delivered))
	}
}
