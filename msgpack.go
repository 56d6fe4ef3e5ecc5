package strn

import (
	"github.com/vmihailenco/msgpack/v5"
)

// On the wire a string is its raw integer, so decoding never has to
// re-derive the length.

var (
	_ msgpack.CustomEncoder = String32(0)
	_ msgpack.CustomEncoder = String56(0)
	_ msgpack.CustomEncoder = String64(0)
	_ msgpack.CustomDecoder = (*String32)(nil)
	_ msgpack.CustomDecoder = (*String56)(nil)
	_ msgpack.CustomDecoder = (*String64)(nil)
)

func (s String32) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint(uint64(s))
}

func (s *String32) DecodeMsgpack(dec *msgpack.Decoder) error {
	u, err := dec.DecodeUint32()
	if err != nil {
		return err
	}
	*s = String32(u)
	return nil
}

func (s String56) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint(uint64(s))
}

func (s *String56) DecodeMsgpack(dec *msgpack.Decoder) error {
	u, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	*s = String56(u)
	return nil
}

func (s String64) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint(uint64(s))
}

func (s *String64) DecodeMsgpack(dec *msgpack.Decoder) error {
	u, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	*s = String64(u)
	return nil
}
