package merge

import (
	"context"
)

// Reset unconditionally clears all values from the target sheet.
func Reset(ctx context.Context, target Worksheet) error {
	if err := target.Clear(ctx); err != nil {
		return err
	}

	infof("✅ target sheet cleared")

	return nil
}
