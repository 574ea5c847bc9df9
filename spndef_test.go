package j1939

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataType_ByteWidth(t *testing.T) {
	assert.Equal(t, 1, DataTypeUint8.ByteWidth())
	assert.Equal(t, 1, DataTypeInt8.ByteWidth())
	assert.Equal(t, 2, DataTypeUint16.ByteWidth())
	assert.Equal(t, 2, DataTypeInt16.ByteWidth())
	assert.Equal(t, 4, DataTypeUint32.ByteWidth())
	assert.Equal(t, 4, DataTypeInt32.ByteWidth())
}

func TestDataType_Signed(t *testing.T) {
	assert.False(t, DataTypeUint8.Signed())
	assert.False(t, DataTypeUint16.Signed())
	assert.False(t, DataTypeUint32.Signed())
	assert.True(t, DataTypeInt8.Signed())
	assert.True(t, DataTypeInt16.Signed())
	assert.True(t, DataTypeInt32.Signed())
}

func TestDataType_String(t *testing.T) {
	assert.Equal(t, "uint16", DataTypeUint16.String())
	assert.Equal(t, "int32", DataTypeInt32.String())
	assert.Equal(t, "unknown(200)", DataType(200).String())
}

func TestDataType_UnmarshalText(t *testing.T) {
	var testCases = []struct {
		name        string
		when        string
		expect      DataType
		expectError string
	}{
		{name: "ok, uint8", when: "uint8", expect: DataTypeUint8},
		{name: "ok, uint16", when: "uint16", expect: DataTypeUint16},
		{name: "ok, uint32", when: "uint32", expect: DataTypeUint32},
		{name: "ok, int8", when: "int8", expect: DataTypeInt8},
		{name: "ok, int16", when: "int16", expect: DataTypeInt16},
		{name: "ok, int32", when: "int32", expect: DataTypeInt32},
		{name: "nok, unknown value", when: "float64", expectError: "unknown DataType value: `float64`"},
		{name: "nok, empty value", when: "", expectError: "unknown DataType value: ``"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var dt DataType
			err := dt.UnmarshalText([]byte(tc.when))
			if tc.expectError != "" {
				assert.EqualError(t, err, tc.expectError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, dt)
		})
	}
}

func TestDataType_MarshalText(t *testing.T) {
	b, err := DataTypeInt16.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "int16", string(b))
}
