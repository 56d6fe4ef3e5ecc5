package strn_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"strn"
)

type wireRecord struct {
	ID    strn.String64 `msgpack:"id"`
	Kind  strn.String32 `msgpack:"kind"`
	Label strn.String56 `msgpack:"label"`
}

func TestMsgpackRecord(t *testing.T) {
	in := wireRecord{
		ID:    strn.New64("order-42"),
		Kind:  strn.New32("BUY"),
		Label: strn.New56("a\x00b"),
	}
	data, err := msgpack.Marshal(&in)
	require.NoError(t, err)

	var out wireRecord
	require.NoError(t, msgpack.Unmarshal(data, &out))
	require.Equal(t, in, out)
	require.Equal(t, 3, out.Label.Len())
}

func TestMsgpackRawInteger(t *testing.T) {
	data, err := msgpack.Marshal(strn.New64("hi"))
	require.NoError(t, err)

	var u uint64
	require.NoError(t, msgpack.Unmarshal(data, &u))
	require.Equal(t, strn.New64("hi").Uint(), u)
}
