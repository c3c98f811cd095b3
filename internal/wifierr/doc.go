// Package wifierr defines the single error type reported by the wifictrl stack.
//
// Errors raised while talking to a control-interface daemon fall into two groups:
//   - Transport errors: socket I/O, timeouts, permission problems opening the
//     socket, closed request/event channels and failed event broadcasts
//   - Parse errors: a reply that could not be decoded into a Status or Config
//
// Both are reported as *Error so callers can propagate them uniformly. A parse
// error nests the *ctrlproto.ConfigError that caused it and keeps the complete
// reply text, so a failure can be reproduced offline without asking the daemon
// again:
//
//	status, err := ap.StatusFromResponse(reply)
//	if err != nil {
//	    if cfgErr, reply, ok := wifierr.ParseFailure(err); ok {
//	        log.Printf("%v in reply:\n%s", cfgErr.Kind, reply)
//	    }
//	}
package wifierr
