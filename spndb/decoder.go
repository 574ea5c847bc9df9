package spndb

import (
	"github.com/aldas/go-j1939-client"
)

// Decoder decodes whole J1939 frames against a Database. Decoding is a pure
// function of its inputs, a Decoder may be shared by any number of
// goroutines.
type Decoder struct {
	db *Database
}

// NewDecoder creates decoder over given database.
func NewDecoder(db *Database) *Decoder {
	return &Decoder{db: db}
}

// DecodeFrame decodes all known SPNs contained in the frame, in catalog
// order. Unknown PGN yields empty result, it is not an error. Fields the data
// is too short for and fields carrying "not available"/error indicator values
// are left out of the result without any per-field failure signal.
func (d *Decoder) DecodeFrame(canID uint32, data []byte) []j1939.DecodedSPN {
	defs, ok := d.db.DefinitionsForPGN(j1939.ExtractPGN(canID))
	if !ok {
		return nil
	}
	result := make([]j1939.DecodedSPN, 0, len(defs))
	for _, def := range defs {
		decoded, err := j1939.DecodeSPNFull(data, def)
		if err != nil {
			continue
		}
		result = append(result, decoded)
	}
	return result
}

// DecodeSPNByNumber decodes single SPN by its number. Returns false when SPN
// is not known to the database, data is too short or value is a special "not
// available"/error value. Callers needing to distinguish these should use
// Database.DefinitionForSPN together with j1939.DecodeSPN.
func (d *Decoder) DecodeSPNByNumber(spn uint32, data []byte) (float64, bool) {
	def, ok := d.db.DefinitionForSPN(spn)
	if !ok {
		return 0, false
	}
	value, err := j1939.DecodeSPN(data, def)
	if err != nil {
		return 0, false
	}
	return value, true
}

// DecodeFrame decodes frame against the default built-in database.
func DecodeFrame(canID uint32, data []byte) []j1939.DecodedSPN {
	return NewDecoder(Default()).DecodeFrame(canID, data)
}

// DecodeSPNByNumber decodes single SPN against the default built-in database.
func DecodeSPNByNumber(spn uint32, data []byte) (float64, bool) {
	return NewDecoder(Default()).DecodeSPNByNumber(spn, data)
}
