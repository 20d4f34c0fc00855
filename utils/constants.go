package utils

import "time"

// IdentityContextKey is the gin context key holding the acting models.Identity.
const IdentityContextKey = "identity"

// HealthCheckInterval is how often StartHealthMonitor pings its dependencies.
const HealthCheckInterval = 60 * time.Second
