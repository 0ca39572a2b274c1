package document

import (
	"encoding/binary"
	"math"

	"github.com/kailas-cloud/interviewprep/internal/domain"
)

const (
	fieldID      = "__id"
	fieldContent = "__content"
	fieldVector  = "__vector"
)

// buildHashFields converts a Document into the flat map written with HSET.
func buildHashFields(doc *domain.Document) map[string]string {
	return map[string]string{
		fieldID:      doc.ID,
		fieldContent: doc.Text,
		fieldVector:  vectorToBytes(doc.Vector),
	}
}

// vectorToBytes serializes []float32 to a binary string (4 bytes per float, little-endian).
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
