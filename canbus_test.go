package j1939

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCANID(t *testing.T) {
	var testCases = []struct {
		name   string
		canID  uint32
		expect CanBusHeader
	}{
		{
			name:  "ok, 0CF00400 EEC1 broadcast from engine",
			canID: 0x0CF00400,
			expect: CanBusHeader{
				Priority:    3,
				PGN:         61444, // 0xF004
				Destination: AddressGlobal,
				Source:      0,
			},
		},
		{
			name:  "ok, 18FEEE00 ET1 broadcast from engine",
			canID: 0x18FEEE00,
			expect: CanBusHeader{
				Priority:    6,
				PGN:         65262, // 0xFEEE
				Destination: AddressGlobal,
				Source:      0,
			},
		},
		{
			name:  "ok, 18EA00FE request addressed to engine",
			canID: 0x18EA00FE,
			expect: CanBusHeader{
				Priority:    6,
				PGN:         PGNRequest, // PDU1, PS byte is destination
				Destination: 0,
				Source:      AddressNull,
			},
		},
		{
			name:  "ok, data page 1 PGN",
			canID: 0x1DFF0A12,
			expect: CanBusHeader{
				Priority:    7,
				PGN:         0x1FF0A,
				Destination: AddressGlobal,
				Source:      0x12,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			header := ParseCANID(tc.canID)
			assert.Equal(t, tc.expect, header)

			assert.Equal(t, tc.expect.PGN, ExtractPGN(tc.canID))
			assert.Equal(t, tc.expect.Source, ExtractSource(tc.canID))
		})
	}
}

func TestCanBusHeader_Uint32(t *testing.T) {
	var testCases = []struct {
		name   string
		when   CanBusHeader
		expect uint32
	}{
		{
			name: "ok, 61444 EEC1 broadcast",
			when: CanBusHeader{
				PGN:         61444,
				Priority:    3,
				Source:      0,
				Destination: AddressGlobal, // PDU2, destination is not encoded
			},
			expect: 0x0CF00400,
		},
		{
			name: "ok, request addressed to engine from nulladdr",
			when: CanBusHeader{
				PGN:         PGNRequest,
				Priority:    6,
				Source:      AddressNull,
				Destination: 0,
			},
			expect: 0x18EA00FE,
		},
		{
			name: "ok, 65262 ET1 broadcast",
			when: CanBusHeader{
				PGN:         65262,
				Priority:    6,
				Source:      0,
				Destination: AddressGlobal,
			},
			expect: 0x18FEEE00,
		},
		{
			name: "ok, priority is masked to 3 bits",
			when: CanBusHeader{
				PGN:         65262,
				Priority:    0xFF,
				Source:      0,
				Destination: AddressGlobal,
			},
			expect: 0x1CFEEE00,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.when.Uint32()
			assert.Equal(t, tc.expect, result)
		})
	}
}

func TestParseCANID_roundtrip(t *testing.T) {
	canIDs := []uint32{0x0CF00400, 0x18FEEE00, 0x18EA00FE, 0x18EAFFFE, 0x1DFF0A12}
	for _, canID := range canIDs {
		assert.Equal(t, canID, ParseCANID(canID).Uint32())
	}
}

func TestCanBusHeader_IsBroadcast(t *testing.T) {
	assert.True(t, CanBusHeader{PGN: 61444}.IsBroadcast())
	assert.True(t, CanBusHeader{PGN: 65262}.IsBroadcast())
	assert.False(t, CanBusHeader{PGN: PGNRequest}.IsBroadcast())

	assert.True(t, CanBusHeader{PGN: PGNRequest}.IsPeerToPeer())
	assert.False(t, CanBusHeader{PGN: 61444}.IsPeerToPeer())
}

func TestIsValidCANID(t *testing.T) {
	assert.True(t, IsValidCANID(0))
	assert.True(t, IsValidCANID(0x1FFFFFFF))
	assert.False(t, IsValidCANID(0x20000000))
	assert.False(t, IsValidCANID(0xFFFFFFFF))
}

func TestBuildRequest(t *testing.T) {
	var testCases = []struct {
		name         string
		source       uint8
		destination  uint8
		requestedPGN uint32
		expectCanID  uint32
		expectData   [3]byte
	}{
		{
			name:         "ok, request engine hours from engine",
			source:       AddressNull,
			destination:  0,
			requestedPGN: 65253, // 0x00FEE5
			expectCanID:  0x18EA00FE,
			expectData:   [3]byte{0xE5, 0xFE, 0x00},
		},
		{
			name:         "ok, request from all nodes",
			source:       0x21,
			destination:  AddressGlobal,
			requestedPGN: 65262, // 0x00FEEE
			expectCanID:  0x18EAFF21,
			expectData:   [3]byte{0xEE, 0xFE, 0x00},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			canID, data := BuildRequest(tc.source, tc.destination, tc.requestedPGN)
			assert.Equal(t, tc.expectCanID, canID)
			assert.Equal(t, tc.expectData, data)
		})
	}
}
