package ports

import "github.com/bft-labs/et/pkg/log"

// Logger is the structured logger used by the command layer.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field
