package mq

import (
	"github.com/twmb/franz-go/plugin/kotel"
	"go.opentelemetry.io/otel"
)

var (
	tracer = otel.Tracer("product-catalog/storage/mq")

	// kTracer records produce and fetch spans at the client hook level, below
	// the per message spans started here.
	kTracer = kotel.NewTracer()
)
