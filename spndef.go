package j1939

import "fmt"

// DataType describes width and signedness of raw SPN value within frame data.
type DataType uint8

const (
	DataTypeUint8 DataType = iota
	DataTypeUint16
	DataTypeUint32
	DataTypeInt8
	DataTypeInt16
	DataTypeInt32
)

// ByteWidth returns how many bytes of frame data the data type occupies.
func (dt DataType) ByteWidth() int {
	switch dt {
	case DataTypeUint8, DataTypeInt8:
		return 1
	case DataTypeUint16, DataTypeInt16:
		return 2
	default:
		return 4
	}
}

// Signed returns true when raw value is two's complement signed integer.
func (dt DataType) Signed() bool {
	switch dt {
	case DataTypeInt8, DataTypeInt16, DataTypeInt32:
		return true
	}
	return false
}

func (dt DataType) String() string {
	switch dt {
	case DataTypeUint8:
		return "uint8"
	case DataTypeUint16:
		return "uint16"
	case DataTypeUint32:
		return "uint32"
	case DataTypeInt8:
		return "int8"
	case DataTypeInt16:
		return "int16"
	case DataTypeInt32:
		return "int32"
	}
	return fmt.Sprintf("unknown(%d)", uint8(dt))
}

// MarshalText implements encoding.TextMarshaler so data type serializes as its name.
func (dt DataType) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so SPN definitions can be
// loaded from TOML/JSON catalog files.
func (dt *DataType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "uint8":
		*dt = DataTypeUint8
	case "uint16":
		*dt = DataTypeUint16
	case "uint32":
		*dt = DataTypeUint32
	case "int8":
		*dt = DataTypeInt8
	case "int16":
		*dt = DataTypeInt16
	case "int32":
		*dt = DataTypeInt32
	default:
		return fmt.Errorf("unknown DataType value: `%v`", string(b))
	}
	return nil
}

// SPNDef describes single Suspect Parameter Number: where the value lives
// within the frame of its parameter group and how raw value is converted to
// engineering units. SPN number is globally unique per SAE J1939 standard,
// name is a display identifier and is not guaranteed unique.
//
// Field location is StartByte/StartBit (0-indexed, bit 0 is least significant)
// with BitLength bits (1-32). Multi-byte values are little-endian and start at
// byte border, bit fields narrower than a byte are confined to single byte.
// Physical value = raw * Scale + Offset.
type SPNDef struct {
	SPN       uint32   `json:"spn" toml:"spn"`
	Name      string   `json:"name" toml:"name"`
	PGN       uint32   `json:"pgn" toml:"pgn"`
	StartByte uint8    `json:"start_byte" toml:"start_byte"`
	StartBit  uint8    `json:"start_bit" toml:"start_bit"`
	BitLength uint8    `json:"bit_length" toml:"bit_length"`
	Scale     float64  `json:"scale" toml:"scale"`
	Offset    float64  `json:"offset" toml:"offset"`
	Unit      string   `json:"unit" toml:"unit"`
	DataType  DataType `json:"data_type" toml:"data_type"`
}

// DecodedSPN is single decoded parameter value with metadata.
type DecodedSPN struct {
	SPN  uint32 `json:"spn"`
	Name string `json:"name"`
	// Value is in engineering units given by Unit.
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	// RawValue is value before scale/offset, sign-extended for signed data types.
	RawValue int64 `json:"raw_value"`
}
