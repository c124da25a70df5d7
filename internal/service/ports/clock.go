package ports

import "time"

// Clock abstracts time.Now so sweeps and validations are testable against a
// fixed instant. Implementations must return UTC.
type Clock interface {
	Now() time.Time
}
