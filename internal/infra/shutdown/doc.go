// Package shutdown coordinates orderly termination for seeksim.
//
// A Notifier waits for SIGINT or SIGTERM and then runs registered hooks in
// reverse order under a grace deadline:
//
//	n := shutdown.New(30 * time.Second)
//	n.Register(server.Shutdown)
//	return n.Wait()
package shutdown
