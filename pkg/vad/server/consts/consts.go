package consts

// MaxMessageSize is the limit of a single gRPC message, which mostly
// bounds the size of an audio window.
const MaxMessageSize = 16 * 1024 * 1024
