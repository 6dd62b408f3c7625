//go:build rtmidi

package cmd

// Build with -tags rtmidi for live input. The driver needs cgo and the
// platform MIDI headers, so default builds leave it out.
import _ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
