package obs

import (
	"context"
	"log"
	"time"
)

// Time logs the duration of an operation when the returned func runs.
// Pass a pointer to the caller's named error so failures are logged too:
//
//	defer obs.Time(ctx, "mapquest.GetRoute")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
