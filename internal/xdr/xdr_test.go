package xdr

import "testing"

func TestReaderReadUint32LittleEndian(t *testing.T) {
	data := []byte{0x78, 0x56, 0x34, 0x12}
	r := NewReader(data)

	v, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32() error = %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("ReadUint32() = 0x%08X, want 0x12345678", v)
	}
}

func TestReaderReadInt32Negative(t *testing.T) {
	data := []byte{0xFD, 0xFF, 0xFF, 0xFF} // int32(-3)
	r := NewReader(data)

	v, err := r.ReadInt32()
	if err != nil {
		t.Fatalf("ReadInt32() error = %v", err)
	}
	if v != -3 {
		t.Errorf("ReadInt32() = %d, want -3", v)
	}
}

func TestReaderAdvancesPositionAcrossReads(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	}
	r := NewReader(data)

	first, err := r.ReadUint32()
	if err != nil || first != 1 {
		t.Fatalf("first ReadUint32() = %d, %v, want 1, nil", first, err)
	}
	second, err := r.ReadUint32()
	if err != nil || second != 2 {
		t.Fatalf("second ReadUint32() = %d, %v, want 2, nil", second, err)
	}
}

func TestReaderReadUint32ShortBuffer(t *testing.T) {
	cases := [][]byte{
		{},
		{0x01},
		{0x01, 0x02},
		{0x01, 0x02, 0x03},
	}
	for _, data := range cases {
		r := NewReader(data)
		if _, err := r.ReadUint32(); err != ErrShortBuffer {
			t.Errorf("ReadUint32() with %d bytes: err = %v, want ErrShortBuffer", len(data), err)
		}
	}
}

func TestReaderReadInt32ShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadInt32(); err != ErrShortBuffer {
		t.Errorf("ReadInt32() on truncated data: err = %v, want ErrShortBuffer", err)
	}
}

func TestBufferWriterWriteUint32LittleEndian(t *testing.T) {
	w := NewBufferWriter(4)
	w.WriteUint32(0x12345678)
	want := []byte{0x78, 0x56, 0x34, 0x12}
	got := w.Bytes()
	if len(got) != len(want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes() = %v, want %v", got, want)
		}
	}
}

func TestBufferWriterWriteInt32Negative(t *testing.T) {
	w := NewBufferWriter(4)
	w.WriteInt32(-3)
	want := []byte{0xFD, 0xFF, 0xFF, 0xFF}
	got := w.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes() = %v, want %v", got, want)
		}
	}
}

func TestBufferWriterGrowsPastInitialCapacity(t *testing.T) {
	w := NewBufferWriter(0)
	for i := uint32(0); i < 100; i++ {
		w.WriteUint32(i)
	}
	if len(w.Bytes()) != 400 {
		t.Fatalf("Bytes() length = %d, want 400", len(w.Bytes()))
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	w := NewBufferWriter(16)
	w.WriteUint32(0xDEADBEEF)
	w.WriteInt32(-12345)

	r := NewReader(w.Bytes())
	u, err := r.ReadUint32()
	if err != nil || u != 0xDEADBEEF {
		t.Fatalf("ReadUint32() = %d, %v, want 0xDEADBEEF, nil", u, err)
	}
	i, err := r.ReadInt32()
	if err != nil || i != -12345 {
		t.Fatalf("ReadInt32() = %d, %v, want -12345, nil", i, err)
	}
}
