package ports

import "github.com/bft-labs/et/internal/domain"

// Clock reports the current time as an epoch.
type Clock interface {
	Now() domain.Epoch
}
