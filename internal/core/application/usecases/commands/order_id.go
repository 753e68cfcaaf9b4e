package commands

import (
	"math"

	"pharmadmin/internal/pkg/errs"
)

func validateOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsOutOfRangeError("orderId", orderID, 1, int64(math.MaxInt64))
	}
	return nil
}
