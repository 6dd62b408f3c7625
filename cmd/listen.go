package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/midi"
	"github.com/jsphweid/stardex/official"
	"github.com/jsphweid/stardex/strain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
)

var (
	listenPort     int
	listenDebounce time.Duration
	listenOD       float64
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "in", 0, "MIDI input port number")
	listenCmd.Flags().DurationVar(&listenDebounce, "debounce", 300*time.Millisecond, "quiet time before re-rating")
	listenCmd.Flags().Float64Var(&listenOD, "od", constants.DefaultOverallDifficulty, "overall difficulty")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Rates a chart played live on a MIDI device",
	Long: `Records notes from a MIDI input, folding pitches onto the default lanes,
and prints the running rating once playing pauses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(listenPort, listenDebounce, listenOD)
	},
}

func listen(port int, wait time.Duration, od float64) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(port)
	if err != nil {
		return errors.Wrapf(err, "can't open MIDI input %d", port)
	}

	rec := midi.NewRecorder()
	debounced := debounce.New(wait)
	report := func() {
		notes := rec.Notes()
		res := strain.Calculate(notes, od, false)
		off := official.Calculate(official.Input{Notes: notes, OverallDifficulty: od})
		fmt.Printf("%d notes  stars %.3f  official %.3f  %+v\n", len(notes), res.Total, off, res.Details)
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			rec.NoteOn(key, float64(timestampms))
			debounced(report)
		case msg.GetNoteEnd(&ch, &key):
			rec.NoteOff(key, float64(timestampms))
			debounced(report)
		}
	})
	if err != nil {
		return errors.Wrap(err, "can't listen to MIDI input")
	}
	defer stop()

	fmt.Println("Listening, Ctrl+C to stop")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	report()
	return nil
}
