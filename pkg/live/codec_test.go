package live

import (
	"errors"
	"io"
	"testing"
)

func TestEventFrame(t *testing.T) {
	evt := Event{
		Type:   EventSubmit,
		View:   "contact",
		Fields: map[string]string{"name": "Asha", "email": "asha@example.com", "message": "ünïcode ✓"},
	}
	data := EncodeEvent(evt)

	if ft, _ := FrameType(data); ft != FrameEvent {
		t.Fatalf("frame type = %v", ft)
	}
	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if got.Type != EventSubmit || got.View != "contact" || len(got.Fields) != 3 {
		t.Fatalf("got %+v", got)
	}
	for k, v := range evt.Fields {
		if got.Field(k) != v {
			t.Errorf("field %s = %q, want %q", k, got.Field(k), v)
		}
	}

	// Field order must not depend on map iteration
	if again := EncodeEvent(evt); string(again) != string(data) {
		t.Error("encoding is not deterministic")
	}
}

func TestEventFrame_NoFields(t *testing.T) {
	got, err := DecodeEvent(EncodeEvent(Event{Type: EventFilterReset, View: "products"}))
	if err != nil {
		t.Fatal(err)
	}
	if got.Fields != nil || got.Type != EventFilterReset {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeEvent_Malformed(t *testing.T) {
	valid := EncodeEvent(Event{Type: EventFilterQuery, View: "products", Fields: map[string]string{"q": "arm"}})

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"wrong frame", []byte{byte(FrameHTML), 1, 0}},
		{"truncated", valid[:len(valid)-2]},
		{"huge count", []byte{byte(FrameEvent), byte(EventSubmit), 0, 0xff, 0xff, 0x03}},
		{"string past end", []byte{byte(FrameEvent), byte(EventSubmit), 40, 'x'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeEvent(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestUpdateFrame(t *testing.T) {
	u := Update{Seq: 300, View: "products", HTML: `<div class="grid">…</div>`}
	got, err := DecodeUpdate(EncodeUpdate(u))
	if err != nil {
		t.Fatal(err)
	}
	if got != u {
		t.Errorf("got %+v, want %+v", got, u)
	}
}

func TestControlFrame(t *testing.T) {
	c := Control{Name: ControlHello, Text: "0b7c4a0e-4c2e-4d5f-9a55-7d86e2b1a001", Seq: 7}
	got, err := DecodeControl(EncodeControl(c))
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Errorf("got %+v, want %+v", got, c)
	}

	if _, err := DecodeControl(EncodeUpdate(Update{})); err == nil {
		t.Error("decoding an update as control should fail")
	}
}

func TestDecoder_StringLimits(t *testing.T) {
	var buf []byte
	buf = append(buf, 0x80, 0x80, 0x80, 0x01) // 2MiB
	if _, err := NewDecoder(buf).ReadString(); !errors.Is(err, errTooLong) {
		t.Errorf("err = %v, want errTooLong", err)
	}
	if _, err := NewDecoder([]byte{5, 'a'}).ReadString(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("err = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestParseEventType(t *testing.T) {
	for typ, name := range eventNames {
		got, ok := ParseEventType(name)
		if !ok || got != typ {
			t.Errorf("ParseEventType(%q) = %v, %v", name, got, ok)
		}
		if typ.String() != name {
			t.Errorf("String() = %q, want %q", typ.String(), name)
		}
	}
	if _, ok := ParseEventType("click"); ok {
		t.Error("unknown name parsed")
	}
}
