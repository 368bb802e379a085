package timeline

import (
	"time"

	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

type Slot struct {
	Start   time.Time `json:"start"`
	Label   string    `json:"label"`
	Minutes int       `json:"minutes"`
}

type SlotBucket struct {
	Slot
	Records []entity.TimedRecord `json:"records"`
}

type DayView struct {
	Day      dateutil.Day                    `json:"day"`
	AllDay   []entity.TimedRecord            `json:"all_day"`
	Slots    []SlotBucket                    `json:"slots"`
	Warnings []entity.MalformedRecordWarning `json:"warnings,omitempty"`
}

// DaySlots lists the half-hour slots the day view renders, 07:00 through 21:30
func (ix *Index) DaySlots(day dateutil.Day) []Slot {
	slots := make([]Slot, 0, (LastSlotStart-FirstSlotStart)/SlotMinutes+1)
	for m := FirstSlotStart; m <= LastSlotStart; m += SlotMinutes {
		slots = append(slots, Slot{
			Start:   time.Date(day.Year, day.Month, day.Day, m/60, m%60, 0, 0, ix.loc),
			Label:   dateutil.FormatClock(m),
			Minutes: SlotMinutes,
		})
	}
	return slots
}

func (ix *Index) DayView(records []entity.TimedRecord, day dateutil.Day) DayView {
	onDay, warnings := ix.RecordsOnDay(records, day)
	view := DayView{
		Day:      day,
		AllDay:   make([]entity.TimedRecord, 0),
		Warnings: warnings,
	}
	for _, rec := range onDay {
		if !rec.HasTime {
			view.AllDay = append(view.AllDay, rec)
		}
	}
	for _, slot := range ix.DaySlots(day) {
		view.Slots = append(view.Slots, SlotBucket{
			Slot:    slot,
			Records: ix.RecordsInTimeSlot(onDay, slot.Start, slot.Minutes),
		})
	}
	return view
}
