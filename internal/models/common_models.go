package models

// Status is the lifecycle state shared by sales, BOQs and productions.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// MovementType classifies a stock movement's cause.
type MovementType string

const (
	MovementReceipt               MovementType = "RECEIPT"
	MovementSale                  MovementType = "SALE"
	MovementProductionConsumption MovementType = "PRODUCTION_CONSUMPTION"
	MovementReturn                MovementType = "RETURN"
	MovementAdjustment            MovementType = "ADJUSTMENT"
)
