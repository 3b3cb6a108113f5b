package calc

import "math"

const (
	lapKm          = 0.4
	splitKm        = 0.1
	halfMarathonKm = 21.0975
	marathonKm     = 42.195
)

// Splits holds a 400 m lap breakdown and race projections for one pace.
// Each field is rounded independently from the continuous value, so
// Split400m need not equal four times Split100m.
type Splits struct {
	TotalSeconds     int `json:"total_seconds" yaml:"total_seconds"`
	TotalMinutes     int `json:"total_minutes" yaml:"total_minutes"`
	TotalRemSeconds  int `json:"total_rem_seconds" yaml:"total_rem_seconds"`
	Split100m        int `json:"split_100m" yaml:"split_100m"`
	Split200m        int `json:"split_200m" yaml:"split_200m"`
	Split300m        int `json:"split_300m" yaml:"split_300m"`
	Split400m        int `json:"split_400m" yaml:"split_400m"`
	Time10km         int `json:"time_10km" yaml:"time_10km"`
	TimeHalfMarathon int `json:"time_half_marathon" yaml:"time_half_marathon"`
	TimeMarathon     int `json:"time_marathon" yaml:"time_marathon"`
}

// TrackSplits computes the 400 m splits and race times for a pace in
// seconds per kilometre.
func TrackSplits(paceSecondsPerKm int) Splits {
	pace := float64(paceSecondsPerKm)
	lap := pace * lapKm
	split := pace * splitKm
	return Splits{
		TotalSeconds:     roundInt(lap),
		TotalMinutes:     int(math.Floor(lap / 60)),
		TotalRemSeconds:  int(math.Floor(math.Mod(lap, 60))),
		Split100m:        roundInt(split),
		Split200m:        roundInt(split * 2),
		Split300m:        roundInt(split * 3),
		Split400m:        roundInt(lap),
		Time10km:         roundInt(pace * 10),
		TimeHalfMarathon: roundInt(pace * halfMarathonKm),
		TimeMarathon:     roundInt(pace * marathonKm),
	}
}

// TotalTime is the 400 m time rendered as M:SS.
func (s Splits) TotalTime() string {
	return FormatMinSec(s.TotalMinutes, s.TotalRemSeconds)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
