// Package util provides small helpers shared by the encoder packages.
package util
