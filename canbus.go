package j1939

// CanBusHeader is 29-bit extended CAN ID broken down into J1939 fields.
type CanBusHeader struct {
	PGN         uint32 `json:"pgn"`
	Priority    uint8  `json:"priority"`
	Source      uint8  `json:"source"`
	Destination uint8  `json:"destination"`
}

// Uint32 builds 29-bit CAN ID from J1939 header fields. Exact inverse of
// ParseCANID. For broadcast (PDU2) PGNs the destination field is not part of
// the CAN ID and is ignored.
func (h CanBusHeader) Uint32() uint32 {
	canID := uint32(h.Source) // bits 0-7
	pf := uint8(h.PGN >> 8)   // bits 16-23
	if pf < 240 {             // PDU1, destination address occupies PS byte
		canID |= uint32(h.Destination) << 8 // bits 8-15
	}
	canID |= h.PGN << 8                        // DP + PF (+ PS for PDU2)
	canID = canID | uint32(h.Priority&0x7)<<26 // bit 26,27,28
	return canID
}

// IsBroadcast returns true when header PGN is PDU2 (broadcast-only) format.
func (h CanBusHeader) IsBroadcast() bool {
	return uint8(h.PGN>>8) >= 240 // PDU2 format: PF >= 240
}

// IsPeerToPeer returns true when header PGN is PDU1 (peer-to-peer) format.
func (h CanBusHeader) IsPeerToPeer() bool {
	return !h.IsBroadcast()
}

// ParseCANID parses J1939 header fields from CANID (29 bits of 32 bit).
//
//	| Priority | R | DP | PF | PS/DA | SA |
//	|   3 bit  |1b | 1b | 8b |  8b   | 8b |
//
// PF >= 240 is PDU2 (broadcast) format where PS byte is low byte of the PGN,
// PF < 240 is PDU1 (peer-to-peer) format where PS byte is destination address.
func ParseCANID(canID uint32) CanBusHeader {
	result := CanBusHeader{
		Priority: uint8((canID >> 26) & 0x7), // bit 26,27,28
		Source:   uint8(canID),               // bit 0-7
	}
	ps := uint8(canID >> 8)         // bits 8-15
	pduFormat := uint8(canID >> 16) // bits 16-23
	dp := uint8(canID>>24) & 1      // bit 24, bit 25 is reserved and always 0
	pgn := uint32(dp)<<16 + uint32(pduFormat)<<8
	if pduFormat < 240 {
		result.Destination = ps
		result.PGN = pgn
	} else {
		result.Destination = AddressGlobal // 0xff is broadcast to all
		result.PGN = pgn + uint32(ps)
	}
	return result
}

// ExtractPGN is faster alternative to ParseCANID for callers that only need
// the PGN. Agrees bit-for-bit with ParseCANID result.
func ExtractPGN(canID uint32) uint32 {
	ps := uint8(canID >> 8)
	pduFormat := uint8(canID >> 16)
	dp := uint8(canID>>24) & 1
	pgn := uint32(dp)<<16 + uint32(pduFormat)<<8
	if pduFormat >= 240 {
		pgn += uint32(ps)
	}
	return pgn
}

// ExtractSource returns source address of given CAN ID.
func ExtractSource(canID uint32) uint8 {
	return uint8(canID)
}

// IsValidCANID checks that CAN ID fits into 29 bits of extended frame ID.
// Unknown PF/PS combinations are not rejected here, they simply fail database
// lookup later.
func IsValidCANID(canID uint32) bool {
	return canID <= 0x1FFFFFFF
}

// BuildRequest creates Request PGN (0xEA00) frame asking destination node to
// transmit given PGN. Returns CAN ID and 3 byte payload with requested PGN in
// little-endian order. Use AddressGlobal as destination to request from all
// nodes.
func BuildRequest(source uint8, destination uint8, requestedPGN uint32) (uint32, [3]byte) {
	header := CanBusHeader{
		PGN:         PGNRequest,
		Priority:    6, // default priority for requests
		Source:      source,
		Destination: destination,
	}
	data := [3]byte{
		uint8(requestedPGN),
		uint8(requestedPGN >> 8),
		uint8(requestedPGN >> 16),
	}
	return header.Uint32(), data
}
