// Package transcode converts audio files between the supported formats by
// shelling out to an external encoder.
//
// Conversion recipes live in a closed table keyed by (source, destination)
// format pair, built from configuration and validated up front to cover every
// pair the quality order can produce. Commands are invoked as a program name
// plus an argument list, never through a shell. The encoder's exit status is
// not treated as authoritative: a conversion succeeded if and only if the
// expected output file exists afterwards.
package transcode
