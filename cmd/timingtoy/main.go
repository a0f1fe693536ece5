package main

import (
	"os"
	"time"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/sched_timing/timespan"
	"github.com/domino14/sched_timing/timing"
)

// Some experimentation code to poke at rollover behavior around DST
// transitions without standing up a whole collection.
func main() {
	var (
		created      int64
		now          int64
		createdWest  int
		nowWest      int
		rolloverHour int
		walk         int
		debug        bool
	)
	fs := flag.NewFlagSet("timingtoy", flag.ContinueOnError)
	fs.Int64Var(&created, "created", time.Now().Add(-30*24*time.Hour).Unix(), "collection creation time, unix seconds")
	fs.Int64Var(&now, "now", time.Now().Unix(), "current time, unix seconds")
	fs.IntVar(&createdWest, "created-mins-west", 0, "UTC offset at creation, minutes west (UTC+10 is -600)")
	fs.IntVar(&nowWest, "now-mins-west", 0, "current UTC offset, minutes west")
	fs.IntVar(&rolloverHour, "rollover-hour", 4, "hour of day the scheduler day rolls over")
	fs.IntVar(&walk, "walk", 5, "how many upcoming rollovers to print")
	fs.BoolVar(&debug, "debug", false, "debug logging on")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("parsing flags")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	t := timing.TimingToday(created, int32(createdWest), now, int32(nowWest), int8(rolloverHour))
	log.Info().
		Uint32("days-elapsed", t.DaysElapsed).
		Int64("next-day-at", t.NextDayAt).
		Str("next-day-in", timespan.FormatIn(float64(t.NextDayAt-now))).
		Msg("timing-today")

	// step through the boundaries that follow
	cur := t
	for range walk {
		next := timing.TimingToday(created, int32(createdWest), cur.NextDayAt, int32(nowWest), int8(rolloverHour))
		log.Debug().
			Uint32("days-elapsed", next.DaysElapsed).
			Time("at", time.Unix(cur.NextDayAt, 0).UTC()).
			Str("since-now", timespan.Format(float64(cur.NextDayAt-now))).
			Msg("rollover")
		cur = next
	}
}
