package j1939

import (
	"encoding/binary"
	"errors"
)

// J1939 reserves the two highest raw values of every field: all ones means
// "not available" and all ones minus one is the error indicator (broken
// sensor etc). Neither decodes to a physical value.
var (
	// ErrValueNoData indicates that field value is "not available" (2^N-1 for N bit field).
	ErrValueNoData = errors.New("field value is not available")
	// ErrValueErrorIndicator indicates that transmitting node flagged the value as erroneous (2^N-2).
	ErrValueErrorIndicator = errors.New("field value is error indicator")
	// ErrDataTooShort indicates that frame data does not contain the field.
	ErrDataTooShort = errors.New("data is too short to contain field value")
)

// ExtractRaw reads raw unsigned bit pattern for given SPN from frame data.
// Returns ErrDataTooShort when data does not cover start byte + data type
// width. Multi-byte values are read little-endian, bit fields narrower than a
// byte are shifted and masked out of their single byte. Patterns wider than
// declared bit length are truncated to it.
func (d RawData) ExtractRaw(def SPNDef) (uint64, error) {
	width := def.DataType.ByteWidth()
	start := int(def.StartByte)
	// single length check covers the whole read below
	if len(d) < start+width {
		return 0, ErrDataTooShort
	}

	var raw uint64
	switch width {
	case 2:
		raw = uint64(binary.LittleEndian.Uint16(d[start:]))
	case 4:
		raw = uint64(binary.LittleEndian.Uint32(d[start:]))
	default:
		raw = uint64(d[start] >> def.StartBit)
	}
	if bitCount := uint8(width * 8); def.BitLength < bitCount {
		raw &= uint64(1)<<def.BitLength - 1
	}
	return raw, nil
}

// extractAndValidate extracts raw pattern, rejects special values and applies
// scale/offset in one pass. Raw value is sign-extended for signed data types.
func extractAndValidate(data RawData, def SPNDef) (int64, float64, error) {
	pattern, err := data.ExtractRaw(def)
	if err != nil {
		return 0, 0, err
	}

	if def.BitLength == 0 {
		return 0, 0, ErrValueNoData
	}
	naValue := uint64(1)<<def.BitLength - 1 // BitLength is at most 32, can not overflow
	if pattern == naValue {
		return 0, 0, ErrValueNoData
	}
	if pattern == naValue-1 { // for 1 bit fields naValue-1 is 0, no valid values at all
		return 0, 0, ErrValueErrorIndicator
	}

	raw := int64(pattern)
	if def.DataType.Signed() && pattern&(uint64(1)<<(def.BitLength-1)) != 0 {
		raw = int64(pattern | ^(uint64(1)<<def.BitLength - 1))
	}
	return raw, float64(raw)*def.Scale + def.Offset, nil
}

// DecodeSPN decodes single SPN value from frame data into engineering units.
// Returns ErrDataTooShort, ErrValueNoData or ErrValueErrorIndicator when no
// physical value is available, all three are expected conditions on a live
// bus and not failures.
func DecodeSPN(data RawData, def SPNDef) (float64, error) {
	_, value, err := extractAndValidate(data, def)
	return value, err
}

// DecodeSPNFull decodes single SPN and returns value with raw value and metadata.
func DecodeSPNFull(data RawData, def SPNDef) (DecodedSPN, error) {
	raw, value, err := extractAndValidate(data, def)
	if err != nil {
		return DecodedSPN{}, err
	}
	return DecodedSPN{
		SPN:      def.SPN,
		Name:     def.Name,
		Value:    value,
		Unit:     def.Unit,
		RawValue: raw,
	}, nil
}
