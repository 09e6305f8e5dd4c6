package ebtree

import "testing"

func TestEqualBits(t *testing.T) {
	type args struct {
		a, b    []byte
		ignore  int
		length  int
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		// identical keys report (at least) the full length
		{"identical one byte", args{[]byte{0xAA}, []byte{0xAA}, 0, 8}, 8},
		{"identical three bytes", args{[]byte("abc"), []byte("abc"), 0, 24}, 24},
		// difference in the top bit
		{"msb differs", args{[]byte{0x80}, []byte{0x00}, 0, 8}, 0},
		// difference in the bottom bit
		{"lsb differs", args{[]byte{0x01}, []byte{0x00}, 0, 8}, 7},
		// 'app' vs 'apple' terminated: byte 3 is 0x00 vs 'l'=0x6C,
		// first difference is bit 25 (0x6C has its top set bit at 6)
		{"app vs apple", args{[]byte("app\x00"), []byte("apple\x00"), 0, 32}, 25},
		// the ignore hint restarts on its byte boundary
		{"ignore skips verified bytes", args{[]byte{0xFF, 0x0F}, []byte{0xFF, 0x1F}, 8, 16}, 11},
		{"ignore mid byte", args{[]byte{0xFF, 0x0F}, []byte{0xFF, 0x1F}, 10, 16}, 11},
		// non byte-aligned limit with equal bytes overshoots to the
		// byte boundary
		{"overshoot on equal bytes", args{[]byte{0xAB}, []byte{0xAB}, 0, 5}, 8},
		// difference beyond the limit but inside the limit's byte is
		// still reported exactly
		{"difference past limit same byte", args{[]byte{0xA8}, []byte{0xA9}, 0, 5}, 7},
		{"zero length", args{[]byte{0x00}, []byte{0xFF}, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualBits(tt.args.a, tt.args.b, tt.args.ignore, tt.args.length); got != tt.want {
				t.Errorf("EqualBits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCmpBits(t *testing.T) {
	type args struct {
		a, b []byte
		pos  int
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"a below b at msb", args{[]byte{0x00}, []byte{0x80}, 0}, -1},
		{"a above b at msb", args{[]byte{0x80}, []byte{0x00}, 0}, 1},
		{"a below b at lsb", args{[]byte{0xFE}, []byte{0xFF}, 7}, -1},
		{"second byte", args{[]byte{0xAA, 0x40}, []byte{0xAA, 0x00}, 9}, 1},
		// 'app' vs 'apple' at their first difference
		{"app vs apple at bit 25", args{[]byte("app\x00"), []byte("apple\x00"), 25}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CmpBits(tt.args.a, tt.args.b, tt.args.pos); got != tt.want {
				t.Errorf("CmpBits() = %v, want %v", got, tt.want)
			}
		})
	}
}
