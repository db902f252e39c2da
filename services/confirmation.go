package services

// Actions that are destructive or hard to reverse. The services layer
// only exposes the metadata; the interactive confirmation prompt itself
// belongs to the presentation layer, which must send confirm=true
// before such a mutation is applied.
const (
	ActionCancelReservation = "reservation.cancel"
	ActionRectifyCharge     = "ledger.rectify"
	ActionMoveCharge        = "ledger.move"
	ActionBulkMoveCharges   = "ledger.bulkMove"
)

var confirmableActions = map[string]bool{
	ActionCancelReservation: true,
	ActionRectifyCharge:     true,
	ActionMoveCharge:        true,
	ActionBulkMoveCharges:   true,
}

// RequiresConfirmation reports whether an action needs an explicit user
// confirmation before it may be applied.
func RequiresConfirmation(action string) bool {
	return confirmableActions[action]
}
