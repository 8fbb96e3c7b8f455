package commands

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("slotbook/usecase/commands")
