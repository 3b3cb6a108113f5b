package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/runcals/internal/model"
)

func validDraft() Draft {
	return Draft{
		EventName: "Taipei Marathon",
		Date:      "2024-12-15",
		Type:      model.EventTypeRace,
		Distance:  model.EventDistanceMarathon,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		ok     bool
	}{
		{"valid", func(*Draft) {}, true},
		{"blank name", func(d *Draft) { d.EventName = "  " }, false},
		{"bad date", func(d *Draft) { d.Date = "15/12/2024" }, false},
		{"impossible date", func(d *Draft) { d.Date = "2024-02-30" }, false},
		{"unknown type", func(d *Draft) { d.Type = "Party" }, false},
		{"unknown distance", func(d *Draft) { d.Distance = "3KM" }, false},
		{"trail without custom distance", func(d *Draft) { d.Distance = model.EventDistanceTrailRun }, false},
		{"other without custom distance", func(d *Draft) {
			d.Type = model.EventTypeTraining
			d.Distance = model.EventDistanceOther
		}, false},
		{"trail with custom distance", func(d *Draft) {
			d.Distance = model.EventDistanceTrailRun
			d.CustomDistance = "50K"
		}, true},
		{"event type skips custom distance", func(d *Draft) {
			d.Type = model.EventTypeEvent
			d.Distance = model.EventDistanceOther
		}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			err := Validate(d)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEvent)
			}
		})
	}
}
