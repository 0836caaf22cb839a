package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// SecondsPerDay is used to express lock limits in configuration defaults.
const SecondsPerDay = 24 * 60 * 60
