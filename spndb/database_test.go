package spndb

import (
	"testing"

	"github.com/aldas/go-j1939-client"
	"github.com/stretchr/testify/assert"
)

func TestDatabase_DefinitionsForPGN(t *testing.T) {
	db := Default()

	defs, ok := db.DefinitionsForPGN(61444)
	assert.True(t, ok)
	assert.Len(t, defs, 8)
	// catalog order is preserved within the PGN
	assert.Equal(t, uint32(899), defs[0].SPN)
	assert.Equal(t, uint32(2432), defs[7].SPN)

	defs, ok = db.DefinitionsForPGN(65262)
	assert.True(t, ok)
	assert.Len(t, defs, 6)

	defs, ok = db.DefinitionsForPGN(12345)
	assert.False(t, ok)
	assert.Nil(t, defs)
}

func TestDatabase_DefinitionForSPN(t *testing.T) {
	db := Default()

	def, ok := db.DefinitionForSPN(190)
	assert.True(t, ok)
	assert.Equal(t, "engine_speed", def.Name)
	assert.Equal(t, uint32(61444), def.PGN)

	_, ok = db.DefinitionForSPN(99999)
	assert.False(t, ok)
}

func TestDatabase_Stats(t *testing.T) {
	pgnCount, spnCount := Default().Stats()
	assert.GreaterOrEqual(t, pgnCount, 10)
	assert.GreaterOrEqual(t, spnCount, 50)
}

func TestDatabase_PGNs(t *testing.T) {
	pgns := Default().PGNs()
	assert.Contains(t, pgns, uint32(61444))
	assert.Contains(t, pgns, uint32(65262))
	for i := 1; i < len(pgns); i++ {
		assert.Less(t, pgns[i-1], pgns[i])
	}
}

func TestDatabase_duplicateSPNResolvesToFirst(t *testing.T) {
	db := NewDatabase([]j1939.SPNDef{
		{SPN: 190, Name: "first", PGN: 61444, BitLength: 16, Scale: 1, DataType: j1939.DataTypeUint16},
		{SPN: 190, Name: "second", PGN: 65247, BitLength: 16, Scale: 1, DataType: j1939.DataTypeUint16},
	})
	def, ok := db.DefinitionForSPN(190)
	assert.True(t, ok)
	assert.Equal(t, "first", def.Name)
}

func TestValidate(t *testing.T) {
	ok := j1939.SPNDef{SPN: 190, Name: "engine_speed", PGN: 61444, StartByte: 3, BitLength: 16, Scale: 0.125, DataType: j1939.DataTypeUint16}

	var testCases = []struct {
		name        string
		when        []j1939.SPNDef
		expectError string
	}{
		{
			name: "ok",
			when: []j1939.SPNDef{ok},
		},
		{
			name:        "nok, field does not fit into frame",
			when:        []j1939.SPNDef{{SPN: 1, StartByte: 6, BitLength: 32, DataType: j1939.DataTypeUint32}},
			expectError: "spn 1: field at byte 6 does not fit into 8 byte frame",
		},
		{
			name:        "nok, zero bit length",
			when:        []j1939.SPNDef{{SPN: 1, BitLength: 0, DataType: j1939.DataTypeUint8}},
			expectError: "spn 1: bit length 0 does not fit data type uint8",
		},
		{
			name:        "nok, bit length wider than data type",
			when:        []j1939.SPNDef{{SPN: 1, BitLength: 16, DataType: j1939.DataTypeUint8}},
			expectError: "spn 1: bit length 16 does not fit data type uint8",
		},
		{
			name:        "nok, start bit out of byte range",
			when:        []j1939.SPNDef{{SPN: 1, StartBit: 8, BitLength: 2, DataType: j1939.DataTypeUint8}},
			expectError: "spn 1: start bit 8 is out of byte range",
		},
		{
			name:        "nok, start bit on multi-byte field",
			when:        []j1939.SPNDef{{SPN: 1, StartBit: 2, BitLength: 16, DataType: j1939.DataTypeUint16}},
			expectError: "spn 1: multi-byte field can not have start bit 2",
		},
		{
			name:        "nok, duplicate spn",
			when:        []j1939.SPNDef{ok, {SPN: 190, Name: "other", BitLength: 8, DataType: j1939.DataTypeUint8}},
			expectError: "spn 190: duplicate definition other, already defined as engine_speed",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.when)
			if tc.expectError != "" {
				assert.EqualError(t, err, tc.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
