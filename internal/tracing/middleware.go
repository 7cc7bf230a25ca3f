package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/folio/internal/editor"
)

// EditorMiddleware wraps engine command execution in one span per command.
// A nil tracer returns a pass-through.
func EditorMiddleware(tracer trace.Tracer) editor.Middleware {
	if tracer == nil {
		return func(next editor.Executor) editor.Executor { return next }
	}

	return func(next editor.Executor) editor.Executor {
		return func(cmd editor.Command) editor.Outcome {
			_, span := tracer.Start(context.Background(), SpanEditorCommand,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(
					attribute.String(AttrCommandID, cmd.ID()),
					attribute.String(AttrCommandMode, cmd.Mode().String()),
				),
			)
			defer span.End()

			out := next(cmd)

			span.SetAttributes(
				attribute.String(AttrCommandResult, out.Result.String()),
				attribute.Bool(AttrContentChanged, out.ContentChanged),
				attribute.Bool(AttrModeChanged, out.ModeChanged),
				attribute.Bool(AttrRegisterChanged, out.RegisterChanged),
			)
			if out.Result != editor.Skipped {
				span.SetStatus(codes.Ok, "")
			}
			return out
		}
	}
}
