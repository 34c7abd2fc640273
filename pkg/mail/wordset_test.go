package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
)

func TestIdentityFromBytes(t *testing.T) {
	r := testRecord(t, 0xDEADBEEF, 0x01234567)

	for _, encrypted := range []bool{false, true} {
		id, err := IdentityFromBytes(r.Encode(encrypted))
		require.NoError(t, err)
		assert.Equal(t, Identity{PV: 0xDEADBEEF, TID: 0x01234567}, id)
		assert.Equal(t, IdentityOf(r), id)
		assert.Equal(t, r.Key, id.Key())
		assert.Equal(t, r.Order, id.Order())
	}

	_, err := IdentityFromBytes(make([]byte, 79))
	assert.ErrorIs(t, err, codec.ErrShortBuffer)
}

func TestApplyKeepsBlock(t *testing.T) {
	e := testEngine(t)
	r := testRecord(t, 0x00000001, 0x00000000)
	id := IdentityOf(r)
	block := r.Bytes()[codec.SubstructuresOffset:]

	for ws := range e.Search(id) {
		applied, err := Apply(r, ws)
		require.NoError(t, err)

		want := ws.ApplyTo(id)
		assert.Equal(t, want.PV, applied.PersonalityValue)
		assert.Equal(t, want.TID, applied.TrainerID)
		assert.Equal(t, r.Key, applied.Key)
		assert.Equal(t, ws.Order, applied.Order)
		assert.False(t, applied.BadEgg)
		assert.Equal(t, r.Checksum, applied.Checksum)
		assert.Equal(t, block, applied.Bytes()[codec.SubstructuresOffset:])
		assert.Equal(t, r.Nickname, applied.Nickname)

		// The chunks are the same bytes, read in the new order.
		for _, tag := range codec.Tags {
			want := r.Substructures().Chunk(codec.TagGrowth)
			pos := applied.Order.Position(tag)
			for _, src := range codec.Tags {
				if r.Order.Position(src) == pos {
					want = r.Substructures().Chunk(src)
				}
			}
			assert.Equal(t, want, applied.Substructures().Chunk(tag), "chunk %s", tag)
		}
	}

	assert.Equal(t, uint32(0x00000001), r.PersonalityValue, "source record changed")
}

func TestApplyNotKeyPreserving(t *testing.T) {
	e := testEngine(t)
	r := testRecord(t, 0x00000001, 0x00000000)

	ws := e.FromIndices(0x0003, 0x0000, 0x0000, 0x0000)
	require.False(t, ws.KeyPreserving(IdentityOf(r)))

	applied, err := Apply(r, ws)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00000003), applied.PersonalityValue)
	assert.NotEqual(t, r.Key, applied.Key)
	assert.True(t, applied.BadEgg)
}

func TestApplyAbsentSlots(t *testing.T) {
	e := testEngine(t)
	r := testRecord(t, 0x77770001, 0x77770000)

	ws := e.FromIndices(0x0003, 0x7777, 0x0002, 0x7777)
	assert.False(t, ws.TopRight.Present)
	assert.False(t, ws.BottomRight.Present)
	assert.Equal(t, "???", ws.TopRight.String())

	applied, err := Apply(r, ws)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x77770003), applied.PersonalityValue)
	assert.Equal(t, uint32(0x77770002), applied.TrainerID)
	assert.False(t, applied.BadEgg)
}

func TestApplyBytes(t *testing.T) {
	e := testEngine(t)
	r := testRecord(t, 0x00000001, 0x00000000)
	ws := e.FromIndices(0x0001, 0x0003, 0x0000, 0x0003)

	want, err := Apply(r, ws)
	require.NoError(t, err)

	for _, encrypted := range []bool{false, true} {
		got, err := ApplyBytes(r.Encode(encrypted), encrypted, ws)
		require.NoError(t, err)
		assert.Equal(t, want.Encode(true), got.Encode(true))
	}

	_, err = ApplyBytes(make([]byte, 10), true, ws)
	assert.ErrorIs(t, err, codec.ErrShortBuffer)
}
