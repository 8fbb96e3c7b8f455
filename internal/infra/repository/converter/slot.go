package converter

import (
	"slotbook/internal/domain/slot"
	"slotbook/internal/infra/query"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/pgconv"
)

func SlotFromRow(row query.Slots) (*slot.Slot, error) {
	s, err := slot.ReconstructSlot(
		row.ID,
		row.OwnerID,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.EndTime),
		row.IsAvailable,
	)
	if err != nil {
		return nil, errs.Wrapf(err, "slot %s", row.ID)
	}
	return s, nil
}

func SlotsFromRows(rows []query.Slots) ([]*slot.Slot, error) {
	slots := make([]*slot.Slot, 0, len(rows))
	for _, row := range rows {
		s, err := SlotFromRow(row)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}
