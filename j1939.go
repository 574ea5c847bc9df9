// Package j1939 implements decoding of SAE J1939 CAN frames into named,
// unit-scaled engineering values.
//
// J1939 is a two-level protocol used on heavy-duty vehicles and industrial
// engines. The 29-bit extended CAN ID encodes a Parameter Group Number (PGN)
// identifying the message and each up-to-8-byte frame packs multiple
// independently scaled parameters (Suspect Parameter Numbers, SPNs) at fixed
// bit offsets.
//
// This package holds the shared types, the CAN ID codec and the bit-level SPN
// value decoding. The built-in SPN catalog with its lookup structures and the
// frame level decoder live in the spndb subpackage. Reading frames off an
// actual bus and assembling multi-packet transport protocol messages are out
// of scope, callers are expected to supply the raw CAN ID and frame data.
package j1939

// MaxFrameDataLength is maximum payload size of single J1939 frame. Longer
// payloads use the transport protocol which this library does not implement.
const MaxFrameDataLength = 8

const (
	// AddressGlobal is broadcast destination, message is meant to all nodes.
	AddressGlobal uint8 = 0xFF
	// AddressNull is used as source by nodes that have not yet claimed an address.
	AddressNull uint8 = 0xFE
)

// PGNRequest (0xEA00) asks destination node to transmit a specific PGN. See BuildRequest.
const PGNRequest uint32 = 0xEA00

// RawData is J1939 frame payload (up to 8 bytes).
type RawData []byte
