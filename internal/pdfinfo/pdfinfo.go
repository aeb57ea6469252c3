// Package pdfinfo inspects uploaded PDF payloads. Results are best-effort
// and used for telemetry only; uploads are accepted regardless.
package pdfinfo

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// PageCount returns the number of pages in a PDF payload, or 0 when the
// bytes do not parse as a PDF.
func PageCount(data []byte) (n int) {
	// The parser can panic on malformed input.
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
