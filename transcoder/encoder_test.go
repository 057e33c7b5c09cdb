package transcoder

import (
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"

	"github.com/unitext/transcode/errors"
)

func TestFromUTF8_ASCII(t *testing.T) {
	units, err := FromUTF8([]byte("Japan"))
	if err != nil {
		t.Fatalf("FromUTF8: %v", err)
	}
	want := []uint16{'J', 'a', 'p', 'a', 'n'}
	if len(units) != len(want) {
		t.Fatalf("got %d units, want %d", len(units), len(want))
	}
	for i := range want {
		if units[i] != want[i] {
			t.Errorf("units[%d] = 0x%04X, want 0x%04X", i, units[i], want[i])
		}
	}
}

func TestFromUTF8_BMP(t *testing.T) {
	// 日本 (U+65E5 U+672C)
	src := []byte{0xE6, 0x97, 0xA5, 0xE6, 0x9C, 0xAC}
	units, err := FromUTF8(src)
	if err != nil {
		t.Fatalf("FromUTF8: %v", err)
	}
	if len(units) != 2 || units[0] != 0x65E5 || units[1] != 0x672C {
		t.Fatalf("units = %04X, want [65E5 672C]", units)
	}
}

func TestFromUTF8_SurrogatePair(t *testing.T) {
	// 😀 (U+1F600) needs a surrogate pair
	units, err := FromUTF8([]byte("\U0001F600"))
	if err != nil {
		t.Fatalf("FromUTF8: %v", err)
	}
	if len(units) != 2 || units[0] != 0xD83D || units[1] != 0xDE00 {
		t.Fatalf("units = %04X, want [D83D DE00]", units)
	}
}

func TestFromUTF8_Empty(t *testing.T) {
	units, err := FromUTF8(nil)
	if err != nil {
		t.Fatalf("empty input must not fail: %v", err)
	}
	if len(units) != 0 {
		t.Fatalf("got %d units, want 0", len(units))
	}

	units, err = FromUTF8([]byte{})
	if err != nil {
		t.Fatalf("empty input must not fail: %v", err)
	}
	if len(units) != 0 {
		t.Fatalf("got %d units, want 0", len(units))
	}
}

func TestFromUTF8_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		src     []byte
		wantOff int
	}{
		{name: "truncated 3-byte sequence", src: []byte{0xE6, 0x97}, wantOff: 0},
		{name: "invalid lead byte", src: []byte{0xFF}, wantOff: 0},
		{name: "stray continuation byte", src: []byte{'a', 0x80}, wantOff: 1},
		{name: "overlong encoding", src: []byte{0xC0, 0xAF}, wantOff: 0},
		{name: "encoded surrogate half", src: []byte{0xED, 0xA0, 0x80}, wantOff: 0},
		{name: "valid prefix then garbage", src: []byte{0xE6, 0x97, 0xA5, 0xFE}, wantOff: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, err := FromUTF8(tt.src)
			if err == nil {
				t.Fatalf("expected error, got units %04X", units)
			}
			if units != nil {
				t.Errorf("failed conversion must not return output, got %04X", units)
			}

			var cerr *errors.Error
			if !stderrors.As(err, &cerr) {
				t.Fatalf("error is %T, want *errors.Error", err)
			}
			if cerr.Kind != errors.KindInvalidUTF8 {
				t.Errorf("Kind = %v, want %v", cerr.Kind, errors.KindInvalidUTF8)
			}
			if cerr.Phase != errors.PhaseMeasure {
				t.Errorf("Phase = %v, want %v", cerr.Phase, errors.PhaseMeasure)
			}
			if cerr.Code != errors.CodeNoTranslation {
				t.Errorf("Code = %v, want %v", cerr.Code, errors.CodeNoTranslation)
			}
			if cerr.Offset != tt.wantOff {
				t.Errorf("Offset = %d, want %d", cerr.Offset, tt.wantOff)
			}
			if !strings.Contains(err.Error(), "invalid UTF-8 sequence") {
				t.Errorf("message %q should identify the input as invalid UTF-8", err.Error())
			}
		})
	}
}

func TestFromUTF8_NoReplacementCharacter(t *testing.T) {
	// A literal U+FFFD in the input is valid and must survive; only
	// malformed bytes are rejected.
	units, err := FromUTF8([]byte("�"))
	if err != nil {
		t.Fatalf("FromUTF8: %v", err)
	}
	if len(units) != 1 || units[0] != 0xFFFD {
		t.Fatalf("units = %04X, want [FFFD]", units)
	}
}

func TestFromUTF8_LengthOverflow(t *testing.T) {
	src := []byte("0123456789")
	units, err := fromUTF8Bounded(src, 4)
	if err == nil {
		t.Fatalf("expected overflow error, got units %04X", units)
	}

	var cerr *errors.Error
	if !stderrors.As(err, &cerr) {
		t.Fatalf("error is %T, want *errors.Error", err)
	}
	if cerr.Kind != errors.KindOverflow {
		t.Errorf("Kind = %v, want %v", cerr.Kind, errors.KindOverflow)
	}
	if cerr.Phase != errors.PhaseValidate {
		t.Errorf("Phase = %v, want %v", cerr.Phase, errors.PhaseValidate)
	}
	// The guard runs before any decoding, so no diagnostic code exists.
	if cerr.Code != errors.CodeNone {
		t.Errorf("Code = %v, want CodeNone", cerr.Code)
	}
}

func TestFromUTF8_RoundTrip(t *testing.T) {
	inputs := []string{
		"Japan",
		"日本",
		"héllo wörld",
		"mixed 日本 and ascii",
		"emoji \U0001F600\U0001F680 pair",
		"� literal replacement",
		"\x01 low control",
	}

	for _, in := range inputs {
		units, err := FromUTF8([]byte(in))
		if err != nil {
			t.Fatalf("FromUTF8(%q): %v", in, err)
		}
		got := utf16.Decode(units)
		want := []rune(in)
		if len(got) != len(want) {
			t.Fatalf("FromUTF8(%q): %d runes after round trip, want %d", in, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("FromUTF8(%q): rune %d = %U, want %U", in, i, got[i], want[i])
			}
		}
	}
}

func TestFromUTF8_MatchesReferenceEncoder(t *testing.T) {
	// Cross-check valid conversions against the x/text UTF-16 encoder.
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()

	inputs := []string{"Japan", "日本", "héllo", "\U0001F600", "a b"}
	for _, in := range inputs {
		units, err := FromUTF8([]byte(in))
		if err != nil {
			t.Fatalf("FromUTF8(%q): %v", in, err)
		}

		want, err := enc.Bytes([]byte(in))
		if err != nil {
			t.Fatalf("reference encoder(%q): %v", in, err)
		}

		got := make([]byte, 0, 2*len(units))
		for _, u := range units {
			got = append(got, byte(u), byte(u>>8))
		}

		if len(got) != len(want) {
			t.Fatalf("FromUTF8(%q): %d bytes, reference %d", in, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("FromUTF8(%q): byte %d = %02X, reference %02X", in, i, got[i], want[i])
			}
		}
	}
}

func TestFromUTF8_Idempotent(t *testing.T) {
	src := []byte("idempotence 日本")

	a, err := FromUTF8(src)
	if err != nil {
		t.Fatalf("first conversion: %v", err)
	}
	b, err := FromUTF8(src)
	if err != nil {
		t.Fatalf("second conversion: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("units[%d] differ: %04X vs %04X", i, a[i], b[i])
		}
	}

	// Outputs are independently owned.
	a[0] = 0xDEAD
	if b[0] == 0xDEAD {
		t.Fatal("outputs share memory")
	}
}

func TestFromUTF8_InputNotMutated(t *testing.T) {
	src := []byte("stable input")
	before := string(src)
	if _, err := FromUTF8(src); err != nil {
		t.Fatalf("FromUTF8: %v", err)
	}
	if string(src) != before {
		t.Fatalf("input mutated: %q", src)
	}
}

func TestFromUTF8_Concurrent(t *testing.T) {
	inputs := [][]byte{
		[]byte("Japan"),
		[]byte("日本"),
		[]byte("\U0001F600"),
		[]byte("concurrent conversion"),
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iter := 0; iter < 200; iter++ {
				src := inputs[iter%len(inputs)]
				units, err := FromUTF8(src)
				if err != nil {
					t.Errorf("FromUTF8(%q): %v", src, err)
					return
				}
				got := string(utf16.Decode(units))
				if got != string(src) {
					t.Errorf("FromUTF8(%q) round-tripped to %q", src, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFromString(t *testing.T) {
	units, err := FromString("日本")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if len(units) != 2 || units[0] != 0x65E5 || units[1] != 0x672C {
		t.Fatalf("units = %04X, want [65E5 672C]", units)
	}
}

func TestWiden_InsufficientBuffer(t *testing.T) {
	// Fill mode with a short destination reports the buffer diagnostic
	// instead of writing out of bounds.
	src := []byte("abc")
	dst := make([]uint16, 2)
	n, code, off := widen(src, dst)
	if code != errors.CodeInsufficientBuffer {
		t.Fatalf("code = %v, want CodeInsufficientBuffer", code)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0 on failure", n)
	}
	if off != 2 {
		t.Errorf("offset = %d, want 2", off)
	}
}

func TestWiden_MeasureMatchesFill(t *testing.T) {
	inputs := []string{"", "a", "Japan", "日本", "\U0001F600 mixed 日本"}
	for _, in := range inputs {
		n, code, _ := widen([]byte(in), nil)
		if code != errors.CodeNone {
			t.Fatalf("measure(%q): code %v", in, code)
		}
		dst := make([]uint16, n)
		written, code, _ := widen([]byte(in), dst)
		if code != errors.CodeNone {
			t.Fatalf("fill(%q): code %v", in, code)
		}
		if written != n {
			t.Fatalf("fill(%q) wrote %d units, measured %d", in, written, n)
		}
	}
}
