package common

// UnknownStr is the placeholder name used for enum values without a known representation.
const UnknownStr = "unknown"
