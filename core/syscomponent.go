package core

import (
	"context"
	"fmt"
	"io"

	"github.com/oqtopus-team/oqtopus-qae/circuit"
	"github.com/oqtopus-team/oqtopus-qae/emitter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/dig"
	"go.uber.org/zap"
)

const tracerName = "github.com/oqtopus-team/oqtopus-qae/core"

type SystemComponents struct {
	*dig.Container
}

func NewSystemComponents(con *dig.Container) *SystemComponents {
	return &SystemComponents{con}
}

func (s *SystemComponents) Emitter() (emitter.Emitter, error) {
	var e emitter.Emitter
	err := s.Invoke(
		func(em emitter.Emitter) {
			e = em
		})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Generate builds the circuit described by setting and writes it with the
// provided emitter. The header may be nil.
func (s *SystemComponents) Generate(ctx context.Context, w io.Writer, setting *CircuitSetting, h *emitter.Header) (*circuit.Circuit, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "qae.generate",
		trace.WithAttributes(
			attribute.Int("qae.num_qubits", setting.NumQubits),
			attribute.Int("qae.num_latent_qubits", setting.NumLatentQubits),
			attribute.Bool("qae.legacy_crz", setting.LegacyCRZ),
		))
	defer span.End()

	c, err := s.generate(w, setting, h)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("qae.instructions", c.Len()))
	return c, nil
}

func (s *SystemComponents) generate(w io.Writer, setting *CircuitSetting, h *emitter.Header) (*circuit.Circuit, error) {
	cfg, err := setting.Config()
	if err != nil {
		zap.L().Error(fmt.Sprintf("invalid circuit setting/reason:%s", err))
		return nil, err
	}
	c, err := circuit.Build(cfg)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to build circuit/reason:%s", err))
		return nil, err
	}
	e, err := s.Emitter()
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to get emitter/reason:%s", err))
		return nil, err
	}
	zap.L().Debug(fmt.Sprintf("emitting %d instructions as %s", c.Len(), e.Format()))
	if err := e.Emit(w, h, c); err != nil {
		zap.L().Error(fmt.Sprintf("failed to emit circuit/reason:%s", err))
		return nil, err
	}
	return c, nil
}

// ProvideContainer registers the emitter selected by conf.
func ProvideContainer(conf *OutputConf) (*dig.Container, error) {
	c := dig.New()
	err := c.Provide(func() (emitter.Emitter, error) {
		return emitter.New(conf.Format, conf.Pretty)
	})
	if err != nil {
		return &dig.Container{}, err
	}
	return c, nil
}
