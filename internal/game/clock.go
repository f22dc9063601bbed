package game

import "time"

// One league week elapses every 48 real-time hours.
const (
	HoursPerWeek = 48
	WeekDuration = HoursPerWeek * time.Hour
)

// NextMatchTime returns when the given week's match unlocks. Week 1 plays
// 48h after the campaign start, week 2 after 96h, and so on.
func NextMatchTime(campaignStart time.Time, week int) time.Time {
	return campaignStart.Add(time.Duration(week) * WeekDuration)
}

// TargetWeek returns the week the campaign should have reached by now. A
// campaign younger than one week duration is still in week 0, waiting for
// week 1 to unlock.
func TargetWeek(campaignStart, now time.Time) int {
	diff := now.Sub(campaignStart)
	if diff < 0 {
		diff = 0
	}
	return int(diff/WeekDuration) + 1
}

// TimeRemaining reports how long until a target unlock time, floored at
// zero.
func TimeRemaining(target, now time.Time) time.Duration {
	d := target.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
