package config

import "time"

var ReadHeaderTimeout = 10 * time.Second

// CatalogCredentialEnv holds the catalog client ID. It is looked up on every
// request rather than at startup.
const CatalogCredentialEnv = "JAMENDO_CLIENT_ID"
