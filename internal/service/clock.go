package service

import (
	"time"

	"github.com/HarshAvichal/EventEase/internal/service/ports"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// NewSystemClock returns the wall clock in UTC.
func NewSystemClock() ports.Clock { return systemClock{} }
