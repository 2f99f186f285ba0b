// Package tlsroots builds the trusted root set for https connections.
//
// A Pool starts from the system certificate store and accepts extra CA
// certificates from PEM bundles. The CLI feeds it the --ca-file flag so
// seekctl can talk to backends that present certificates from a private
// CA.
package tlsroots
