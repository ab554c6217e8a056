package live

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
)

// MaxStringLen bounds every length-prefixed string a decoder accepts
const MaxStringLen = 1 << 20

var (
	errEmptyFrame = errors.New("empty frame")
	errTooLong    = errors.New("string exceeds maximum length")
)

// Encoder handles encoding of live protocol messages
type Encoder struct {
	w   io.Writer
	tmp [binary.MaxVarintLen64]byte
	err error
}

// NewEncoder creates a new encoder
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Err returns the first write error, if any
func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

// WriteByte writes a single byte
func (e *Encoder) WriteByte(b byte) error {
	e.write([]byte{b})
	return e.err
}

// WriteUvarint writes an unsigned varint
func (e *Encoder) WriteUvarint(v uint64) error {
	n := binary.PutUvarint(e.tmp[:], v)
	e.write(e.tmp[:n])
	return e.err
}

// WriteString writes a length-prefixed string
func (e *Encoder) WriteString(s string) error {
	e.WriteUvarint(uint64(len(s)))
	e.write([]byte(s))
	return e.err
}

// Decoder handles decoding of live protocol messages
type Decoder struct {
	r *bytes.Reader
}

// NewDecoder creates a decoder over a complete frame
func NewDecoder(data []byte) *Decoder {
	return &Decoder{r: bytes.NewReader(data)}
}

// ReadByte implements io.ByteReader
func (d *Decoder) ReadByte() (byte, error) {
	return d.r.ReadByte()
}

// ReadUvarint reads an unsigned varint
func (d *Decoder) ReadUvarint() (uint64, error) {
	return binary.ReadUvarint(d.r)
}

// ReadString reads a length-prefixed string
func (d *Decoder) ReadString() (string, error) {
	length, err := d.ReadUvarint()
	if err != nil {
		return "", err
	}
	if length > MaxStringLen {
		return "", errTooLong
	}
	if length > uint64(d.r.Len()) {
		return "", io.ErrUnexpectedEOF
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int {
	return d.r.Len()
}

// FrameType returns the type byte of a frame
func FrameType(data []byte) (MessageType, error) {
	if len(data) == 0 {
		return 0, errEmptyFrame
	}
	return MessageType(data[0]), nil
}

func expect(d *Decoder, want MessageType) error {
	b, err := d.ReadByte()
	if err != nil {
		return errEmptyFrame
	}
	if MessageType(b) != want {
		return fmt.Errorf("frame type 0x%02x, want 0x%02x", b, want)
	}
	return nil
}

// EncodeEvent encodes an event frame. Fields are written in key order.
func EncodeEvent(evt Event) []byte {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.WriteByte(byte(FrameEvent))
	enc.WriteByte(byte(evt.Type))
	enc.WriteString(evt.View)

	keys := make([]string, 0, len(evt.Fields))
	for k := range evt.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	enc.WriteUvarint(uint64(len(keys)))
	for _, k := range keys {
		enc.WriteString(k)
		enc.WriteString(evt.Fields[k])
	}
	return buf.Bytes()
}

// DecodeEvent decodes an event frame
func DecodeEvent(data []byte) (Event, error) {
	d := NewDecoder(data)
	if err := expect(d, FrameEvent); err != nil {
		return Event{}, err
	}

	t, err := d.ReadByte()
	if err != nil {
		return Event{}, fmt.Errorf("event type: %w", err)
	}
	evt := Event{Type: EventType(t)}

	if evt.View, err = d.ReadString(); err != nil {
		return Event{}, fmt.Errorf("event view: %w", err)
	}

	count, err := d.ReadUvarint()
	if err != nil {
		return Event{}, fmt.Errorf("event field count: %w", err)
	}
	// Every field needs at least two length bytes
	if count > uint64(d.Remaining()/2) {
		return Event{}, fmt.Errorf("event field count %d exceeds frame", count)
	}
	if count > 0 {
		evt.Fields = make(map[string]string, count)
	}
	for i := uint64(0); i < count; i++ {
		k, err := d.ReadString()
		if err != nil {
			return Event{}, fmt.Errorf("event field %d: %w", i, err)
		}
		v, err := d.ReadString()
		if err != nil {
			return Event{}, fmt.Errorf("event field %q: %w", k, err)
		}
		evt.Fields[k] = v
	}
	return evt, nil
}

// EncodeUpdate encodes a rendered-view frame
func EncodeUpdate(u Update) []byte {
	var buf bytes.Buffer
	buf.Grow(len(u.HTML) + len(u.View) + 16)
	enc := NewEncoder(&buf)
	enc.WriteByte(byte(FrameHTML))
	enc.WriteUvarint(u.Seq)
	enc.WriteString(u.View)
	enc.WriteString(u.HTML)
	return buf.Bytes()
}

// DecodeUpdate decodes a rendered-view frame
func DecodeUpdate(data []byte) (Update, error) {
	d := NewDecoder(data)
	if err := expect(d, FrameHTML); err != nil {
		return Update{}, err
	}
	var u Update
	var err error
	if u.Seq, err = d.ReadUvarint(); err != nil {
		return Update{}, fmt.Errorf("update seq: %w", err)
	}
	if u.View, err = d.ReadString(); err != nil {
		return Update{}, fmt.Errorf("update view: %w", err)
	}
	if u.HTML, err = d.ReadString(); err != nil {
		return Update{}, fmt.Errorf("update html: %w", err)
	}
	return u, nil
}

// EncodeControl encodes a control frame
func EncodeControl(c Control) []byte {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.WriteByte(byte(FrameControl))
	enc.WriteString(c.Name)
	enc.WriteString(c.Text)
	enc.WriteUvarint(c.Seq)
	return buf.Bytes()
}

// DecodeControl decodes a control frame
func DecodeControl(data []byte) (Control, error) {
	d := NewDecoder(data)
	if err := expect(d, FrameControl); err != nil {
		return Control{}, err
	}
	var c Control
	var err error
	if c.Name, err = d.ReadString(); err != nil {
		return Control{}, fmt.Errorf("control name: %w", err)
	}
	if c.Text, err = d.ReadString(); err != nil {
		return Control{}, fmt.Errorf("control text: %w", err)
	}
	if c.Seq, err = d.ReadUvarint(); err != nil {
		return Control{}, fmt.Errorf("control seq: %w", err)
	}
	return c, nil
}
