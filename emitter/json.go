package emitter

import (
	"io"

	"github.com/go-faster/jx"
	"github.com/oqtopus-team/oqtopus-qae/circuit"
	"github.com/tidwall/pretty"
)

type JSON struct {
	Pretty bool
}

func (j *JSON) Format() string {
	return FormatJSON
}

func (j *JSON) Emit(w io.Writer, h *Header, c *circuit.Circuit) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	if h != nil {
		e.FieldStart("id")
		e.Str(h.ID.String())
		e.FieldStart("created")
		e.Str(h.Created.String())
		e.FieldStart("version")
		e.Str(h.Version)
	}
	e.FieldStart("num_qubits")
	e.Int(c.NumQubits)
	e.FieldStart("num_latent_qubits")
	e.Int(c.NumLatentQubits)
	e.FieldStart("definitions")
	e.ArrStart()
	for _, d := range c.Definitions {
		e.Str(d.Name)
	}
	e.ArrEnd()
	e.FieldStart("encode")
	encodeProgram(e, c.Encode)
	e.FieldStart("decode")
	encodeProgram(e, c.Decode)
	e.ObjEnd()

	b := e.Bytes()
	if j.Pretty {
		b = pretty.Pretty(b)
	} else {
		b = append(b, '\n')
	}
	_, err := w.Write(b)
	return err
}

func encodeProgram(e *jx.Encoder, p circuit.Program) {
	e.ArrStart()
	for _, inst := range p {
		e.ObjStart()
		e.FieldStart("gate")
		e.Str(inst.Type.String())
		e.FieldStart("params")
		e.ArrStart()
		for _, v := range inst.Params {
			e.Float64(v)
		}
		e.ArrEnd()
		e.FieldStart("qubits")
		e.ArrStart()
		for _, q := range inst.Qubits {
			e.Int(q)
		}
		e.ArrEnd()
		e.ObjEnd()
	}
	e.ArrEnd()
}
