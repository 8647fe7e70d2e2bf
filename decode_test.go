package bcd_test

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bcd"
	"github.com/calebcase/oops"
)

func TestDecode(t *testing.T) {
	type TC struct {
		Input  []byte
		Output string
		Mark   error
	}

	tcs := []TC{
		{Input: []byte{0x31}, Output: "31", Mark: oops.New("unexpected")},
		{Input: []byte{0x02, 0x31}, Output: "231", Mark: oops.New("unexpected")},
		{Input: []byte{0x00}, Output: "0", Mark: oops.New("unexpected")},
		{Input: []byte{0x00, 0x00, 0x00}, Output: "0", Mark: oops.New("unexpected")},
		{Input: []byte{0x00, 0x31}, Output: "31", Mark: oops.New("unexpected")},
		{Input: []byte{0x99}, Output: "99", Mark: oops.New("unexpected")},
		{
			Input:  []byte{0x99, 0x99, 0x99, 0x99, 0x99, 0x99, 0x99, 0x99, 0x99},
			Output: "999999999999999999",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0x18, 0x44, 0x67, 0x44, 0x07, 0x37, 0x09, 0x55, 0x16, 0x15},
			Output: "18446744073709551615",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0x18, 0x44, 0x67, 0x44, 0x07, 0x37, 0x09, 0x55, 0x16, 0x16},
			Output: "18446744073709551616",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0x12, 0x34, 0x56, 0x78, 0x90, 0x12, 0x34, 0x56, 0x78, 0x90},
			Output: "123456789012345678901234567890",
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Output, func(t *testing.T) {
			v, err := bcd.Decode(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, v.Text(10), tc.Mark)

			t.Logf("Value: %s\n", spew.Sdump(v))
		})
	}
}

func TestDecodeUint64(t *testing.T) {
	v, err := bcd.DecodeUint64([]byte{0x02, 0x31})
	require.NoError(t, err)
	require.Equal(t, uint64(231), v)

	v, err = bcd.DecodeUint64([]byte{0x18, 0x44, 0x67, 0x44, 0x07, 0x37, 0x09, 0x55, 0x16, 0x15})
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v)

	v, err = bcd.DecodeUint64([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x42})
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)

	_, err = bcd.DecodeUint64([]byte{0x18, 0x44, 0x67, 0x44, 0x07, 0x37, 0x09, 0x55, 0x16, 0x16})
	require.True(t, bcd.DoesNotFit.Has(err), "%v", err)

	_, err = bcd.DecodeUint64([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	require.True(t, bcd.DoesNotFit.Has(err), "%v", err)
}

func TestDecodeString(t *testing.T) {
	type TC struct {
		Input  []byte
		Strip  bool
		Output string
		Mark   error
	}

	tcs := []TC{
		{Input: []byte{0x31}, Strip: true, Output: "31", Mark: oops.New("unexpected")},
		{Input: []byte{0x31}, Strip: false, Output: "31", Mark: oops.New("unexpected")},
		{Input: []byte{0x02, 0x31}, Strip: true, Output: "231", Mark: oops.New("unexpected")},
		{Input: []byte{0x02, 0x31}, Strip: false, Output: "0231", Mark: oops.New("unexpected")},
		{Input: []byte{0x00, 0x31}, Strip: true, Output: "031", Mark: oops.New("unexpected")},
		{Input: []byte{0x00, 0x31}, Strip: false, Output: "0031", Mark: oops.New("unexpected")},
		{Input: []byte{0x00}, Strip: true, Output: "0", Mark: oops.New("unexpected")},
		{Input: []byte{0x00}, Strip: false, Output: "00", Mark: oops.New("unexpected")},
		{Input: []byte{0x00, 0x00}, Strip: true, Output: "0", Mark: oops.New("unexpected")},
		{Input: []byte{0x00, 0x00}, Strip: false, Output: "0000", Mark: oops.New("unexpected")},
		{Input: []byte{0x09}, Strip: true, Output: "9", Mark: oops.New("unexpected")},
		{Input: []byte{0x90}, Strip: true, Output: "90", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%x/%t", tc.Input, tc.Strip), func(t *testing.T) {
			output, err := bcd.DecodeString(tc.Input, tc.Strip)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output, tc.Mark)
		})
	}
}

func TestDecodeIllegal(t *testing.T) {
	type TC struct {
		Input []byte
		Error string
		Mark  error
	}

	tcs := []TC{
		{Input: []byte{0xd0}, Error: "bcd: illegal byte: d0 at 0", Mark: oops.New("unexpected")},
		{Input: []byte{0x0d}, Error: "bcd: illegal byte: 0d at 0", Mark: oops.New("unexpected")},
		{Input: []byte{0xa0}, Error: "bcd: illegal byte: a0 at 0", Mark: oops.New("unexpected")},
		{Input: []byte{0x0a}, Error: "bcd: illegal byte: 0a at 0", Mark: oops.New("unexpected")},
		{Input: []byte{0x12, 0x3f}, Error: "bcd: illegal byte: 3f at 1", Mark: oops.New("unexpected")},
		{Input: []byte{0x12, 0x34, 0xff}, Error: "bcd: illegal byte: ff at 2", Mark: oops.New("unexpected")},
		{
			Input: append(bytes.Repeat([]byte{0x99}, 20), 0xb1),
			Error: "bcd: illegal byte: b1 at 20",
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%x", tc.Input), func(t *testing.T) {
			v, err := bcd.Decode(tc.Input)
			require.EqualError(t, err, tc.Error, tc.Mark)
			require.True(t, bcd.IllegalNibble.Has(err), tc.Mark)
			require.Nil(t, v, tc.Mark)

			for _, strip := range []bool{true, false} {
				s, err := bcd.DecodeString(tc.Input, strip)
				require.EqualError(t, err, tc.Error, tc.Mark)
				require.True(t, bcd.IllegalNibble.Has(err), tc.Mark)
				require.Empty(t, s, tc.Mark)
			}

			err = bcd.Valid(tc.Input)
			require.EqualError(t, err, tc.Error, tc.Mark)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	v, err := bcd.Decode(nil)
	require.True(t, bcd.InvalidInput.Has(err))
	require.Nil(t, v)

	_, err = bcd.DecodeUint64([]byte{})
	require.True(t, bcd.InvalidInput.Has(err))

	s, err := bcd.DecodeString(nil, true)
	require.True(t, bcd.InvalidInput.Has(err))
	require.Empty(t, s)

	require.True(t, bcd.InvalidInput.Has(bcd.Valid(nil)))
}

func TestValid(t *testing.T) {
	for b := 0; b <= 0xff; b++ {
		err := bcd.Valid([]byte{byte(b)})

		if b>>4 <= 9 && b&0x0f <= 9 {
			require.NoError(t, err, "%02x", b)
		} else {
			require.True(t, bcd.IllegalNibble.Has(err), "%02x", b)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0x12, 0x34, 0x56, 0x78, 0x90, 0x12, 0x34, 0x56, 0x78, 0x90}

	for n := 0; n < b.N; n++ {
		_, err := bcd.Decode(data)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDecodeSmall(b *testing.B) {
	data := []byte{0x09, 0x22, 0x33, 0x72, 0x03, 0x68, 0x54, 0x77, 0x58}
	v := new(big.Int)

	for n := 0; n < b.N; n++ {
		d, err := bcd.Decode(data)
		if err != nil {
			b.Fatalf("%+v", err)
		}

		v.Set(d)
	}
}
