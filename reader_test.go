package js2p8

import (
	"errors"
	"testing"
)

func TestReadBitOrder(t *testing.T) {
	r := &bitReader{data: []byte{0xB2}} // 1011_0010, read LSB first
	want := []byte{0, 1, 0, 0, 1, 1, 0, 1}
	for i, wb := range want {
		b, err := r.readBit()
		if err != nil {
			t.Fatal(err)
		}
		if b != wb {
			t.Fatalf("bit %d: got %d, want %d", i, b, wb)
		}
	}
}

func TestReadBitsAcrossBytes(t *testing.T) {
	r := &bitReader{data: []byte{0xFF, 0x01}}
	v, err := r.readBits(9)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x1FF {
		t.Fatalf("got %#x, want 0x1ff", v)
	}
}

func TestReadBitsZero(t *testing.T) {
	r := &bitReader{data: nil}
	v, err := r.readBits(0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("got %d", v)
	}
}

func TestReadBitExhausted(t *testing.T) {
	r := &bitReader{data: []byte{0x00}}
	if _, err := r.readBits(8); err != nil {
		t.Fatal(err)
	}

	_, err := r.readBit()
	if !errors.Is(err, ErrExhaustedInput) {
		t.Fatalf("want ErrExhaustedInput, got %v", err)
	}
}

func TestReadBitsPartialExhausted(t *testing.T) {
	r := &bitReader{data: []byte{0xFF}}
	_, err := r.readBits(9)
	if !errors.Is(err, ErrExhaustedInput) {
		t.Fatalf("want ErrExhaustedInput, got %v", err)
	}
}
