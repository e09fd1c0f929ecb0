package logctx

import (
	"context"
	"log/slog"
)

type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if pd, ok := ctx.Value(passDataKey{}).(*PassData); ok {
		r.AddAttrs(slog.Group("pass",
			slog.String("id", pd.PassID),
		))
	}

	if cd, ok := ctx.Value(candidateDataKey{}).(*CandidateData); ok {
		r.AddAttrs(slog.Group("candidate",
			slog.String("contract", cd.Contract),
			slog.String("type", cd.TypeName),
		))
	}

	if cf, ok := ctx.Value(configurerDataKey{}).(*ConfigurerData); ok {
		r.AddAttrs(slog.Group("configurer",
			slog.String("type", cf.TypeName),
		))
	}

	return h.Handler.Handle(ctx, r)
}

type passDataKey struct{}

type PassData struct {
	PassID string
}

func WithPassData(ctx context.Context, data *PassData) context.Context {
	return context.WithValue(ctx, passDataKey{}, data)
}

type candidateDataKey struct{}

type CandidateData struct {
	Contract string
	TypeName string
}

func WithCandidateData(ctx context.Context, data *CandidateData) context.Context {
	return context.WithValue(ctx, candidateDataKey{}, data)
}

type configurerDataKey struct{}

type ConfigurerData struct {
	TypeName string
}

func WithConfigurerData(ctx context.Context, data *ConfigurerData) context.Context {
	return context.WithValue(ctx, configurerDataKey{}, data)
}
