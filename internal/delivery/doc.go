// Package delivery polls the gateway for the delivery status of sent
// messages. Polling starts at a short interval and backs off
// multiplicatively, with random jitter, while the status stays unchanged.
//
// # Usage
//
//	poller := delivery.NewPoller(delivery.Config{})
//	err := poller.Run(ctx, func(ctx context.Context) (bool, error) {
//	    status, err := fetch(ctx)
//	    if err != nil {
//	        return false, err
//	    }
//	    return status.Final(), nil
//	})
//
// Run returns nil once the check reports done, the check's error, or the
// context's error when the context ends first.
package delivery
