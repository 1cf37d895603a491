package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound gateway requests.
const AuthorizationHeaderName = "Authorization"

// Persisted storage keys. The auth keys are owned by the auth store and must
// only be mutated through it; the mock keys hold per-collection datasets for
// the gateway and the dev backend.
const (
	KeyAccounts    = "auth:accounts"
	KeyCredentials = "auth:credentials"
	KeySession     = "auth:session"

	KeyMockInitialized = "mock:initialized"
	MockKeyPrefix      = "mock:"
)
