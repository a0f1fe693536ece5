// Package timing computes scheduler-day boundaries for a spaced repetition
// collection. A "day" here is not 86400 seconds; it is the span between two
// crossings of a configurable local rollover hour, so it stretches or shrinks
// when the UTC offset changes (DST, travel). All offset information is passed
// in explicitly; nothing in this package reads the process timezone or the
// wall clock.
package timing

import "time"

const secsPerDay = 86400

// Timing describes the current scheduler day.
type Timing struct {
	// DaysElapsed is the number of rollover boundaries crossed since the
	// collection was created.
	DaysElapsed uint32
	// NextDayAt is the UTC timestamp of the next rollover.
	NextDayAt int64
}

// TimingToday computes timing information for the current day.
//   - createdSecs is a UNIX timestamp of the collection creation time
//   - createdMinsWest is the offset west of UTC at the time of creation
//     (eg UTC+10 hours is -600)
//   - nowSecs is a timestamp of the current time
//   - nowMinsWest is the current offset west of UTC
//   - rolloverHour is the hour of the day the rollover happens (eg 4 for 4am)
func TimingToday(createdSecs int64, createdMinsWest int32, nowSecs int64, nowMinsWest int32, rolloverHour int8) Timing {
	createdDT := time.Unix(createdSecs, 0).In(fixedOffsetFromMinutes(createdMinsWest))
	nowDT := time.Unix(nowSecs, 0).In(fixedOffsetFromMinutes(nowMinsWest))

	// The rollover boundary on now's calendar date, built as a local
	// wall-clock time under now's offset. Shifting nowSecs by a number of
	// seconds instead would drift by an hour across each DST transition.
	hour := normalizedRolloverHour(rolloverHour)
	y, m, d := nowDT.Date()
	rolloverToday := time.Date(y, m, d, hour, 0, 0, 0, nowDT.Location())
	rolloverPassed := !nowDT.Before(rolloverToday)

	nextDayAt := rolloverToday.Unix()
	if rolloverPassed {
		nextDayAt += secsPerDay
	}

	days := daysSinceEpoch(nowDT) - daysSinceEpoch(createdDT)
	// current day doesn't count before rollover time
	if !rolloverPassed {
		days--
	}
	if days < 0 {
		days = 0
	}

	return Timing{DaysElapsed: uint32(days), NextDayAt: nextDayAt}
}

// daysSinceEpoch counts calendar days, so two timestamps a second apart on
// either side of local midnight are a full day apart.
func daysSinceEpoch(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secsPerDay
}

// normalizedRolloverHour caps the hour to 23. Negative hours are relative to
// the next day, eg -1 = 23.
func normalizedRolloverHour(hour int8) int {
	capped := int(hour)
	if capped > 23 {
		capped = 23
	}
	if capped < -23 {
		capped = -23
	}
	if capped < 0 {
		return 24 + capped
	}
	return capped
}

// fixedOffsetFromMinutes builds a fixed zone from an offset west of UTC,
// capping minutesWest if out of bounds. time.FixedZone wants seconds east.
func fixedOffsetFromMinutes(minutesWest int32) *time.Location {
	bounded := minutesWest
	if bounded > 23*60 {
		bounded = 23 * 60
	}
	if bounded < -23*60 {
		bounded = -23 * 60
	}
	return time.FixedZone("", int(-bounded)*60)
}
