package decimal

import (
	"bytes"
	"io"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/calebcase/bcd"
)

// ExtID is the MessagePack extension type of a packed decimal.
const ExtID = 1

// MarshalMsgpack implements msgpack.Marshaler. The result is the extension
// payload:
//
//  +---------------------+======================+
//  | scale (msgpack int) | packed digits + sign |
//  +---------------------+======================+
func (b Block) MarshalMsgpack() (data []byte, err error) {
	defer Error.WrapP(&err)

	packed, scale, err := Pack(b.Decimal)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}

	err = msgpack.NewEncoder(buf).EncodeInt(int64(scale))
	if err != nil {
		return nil, err
	}

	buf.Write(packed)

	return buf.Bytes(), nil
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (b *Block) UnmarshalMsgpack(data []byte) (err error) {
	defer Error.WrapP(&err)

	r := bytes.NewReader(data)

	scale, err := msgpack.NewDecoder(r).DecodeInt32()
	if err != nil {
		return bcd.InvalidInput.Wrap(err)
	}

	d, err := Unpack(data[len(data)-r.Len():], scale)
	if err != nil {
		return err
	}

	*b = MakeBlock(d)

	return nil
}

func blockEncoder(e *msgpack.Encoder, v reflect.Value) ([]byte, error) {
	b := v.Interface().(Block)

	return b.MarshalMsgpack()
}

func blockDecoder(d *msgpack.Decoder, v reflect.Value, extLen int) error {
	data := make([]byte, extLen)

	_, err := io.ReadFull(d.Buffered(), data)
	if err != nil {
		return Error.Wrap(err)
	}

	b := v.Addr().Interface().(*Block)

	return b.UnmarshalMsgpack(data)
}

func init() {
	msgpack.RegisterExtDecoder(ExtID, Block{}, blockDecoder)
	msgpack.RegisterExtEncoder(ExtID, Block{}, blockEncoder)
}
