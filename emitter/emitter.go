package emitter

import (
	"fmt"
	"io"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/oqtopus-team/oqtopus-qae/circuit"
)

const (
	FormatQuil  = "quil"
	FormatQASM3 = "qasm3"
	FormatJSON  = "json"
)

// Header identifies one build in the emitted output. Emitters skip it when nil.
type Header struct {
	ID      uuid.UUID
	Created strfmt.DateTime
	Version string
}

func NewHeader(version string) *Header {
	return &Header{
		ID:      uuid.New(),
		Created: strfmt.DateTime(time.Now()),
		Version: version,
	}
}

//go:generate mockgen -destination=mock_emitter/mock_emitter.go github.com/oqtopus-team/oqtopus-qae/emitter Emitter

type Emitter interface {
	Format() string
	Emit(w io.Writer, h *Header, c *circuit.Circuit) error
}

func New(format string, pretty bool) (Emitter, error) {
	switch format {
	case FormatQuil:
		return &Quil{}, nil
	case FormatQASM3:
		return &QASM3{}, nil
	case FormatJSON:
		return &JSON{Pretty: pretty}, nil
	default:
		return nil, fmt.Errorf("%s is an unknown format", format)
	}
}
