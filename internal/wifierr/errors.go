package wifierr

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/muurk/wifictrl/internal/ctrlproto"
)

// Kind represents the category of error that occurred
type Kind int

const (
	// KindIO indicates a socket read or write failure
	KindIO Kind = iota
	// KindStartupAborted indicates the client was stopped before it was ready
	KindStartupAborted
	// KindParsingStatus indicates a STATUS reply could not be decoded
	KindParsingStatus
	// KindParsingConfig indicates a GET_CONFIG reply could not be decoded
	KindParsingConfig
	// KindUnexpectedResponse indicates the daemon answered with something other than expected
	KindUnexpectedResponse
	// KindTimeout indicates no reply arrived in time
	KindTimeout
	// KindShortWrite indicates a request was only partially written
	KindShortWrite
	// KindParseInt indicates an integer in a reply could not be parsed
	KindParseInt
	// KindUTF8 indicates a reply was not valid UTF-8
	KindUTF8
	// KindRecv indicates the responder for a pending request went away
	KindRecv
	// KindUnsolicitedIO indicates a failure on the unsolicited event socket
	KindUnsolicitedIO
	// KindStationRequestChannelClosed indicates the station request channel closed
	KindStationRequestChannelClosed
	// KindStationEventChannelClosed indicates the station event channel closed
	KindStationEventChannelClosed
	// KindAPRequestChannelClosed indicates the access point request channel closed
	KindAPRequestChannelClosed
	// KindAPEventChannelClosed indicates the access point event channel closed
	KindAPEventChannelClosed
	// KindAPBroadcast indicates an access point event could not be broadcast
	KindAPBroadcast
	// KindStationBroadcast indicates a station event could not be broadcast
	KindStationBroadcast
	// KindTimeoutOpeningSocket indicates the control socket did not appear in time
	KindTimeoutOpeningSocket
	// KindPermissionDeniedOpeningSocket indicates the control socket could not be opened
	KindPermissionDeniedOpeningSocket
)

// String returns a human-readable name for the error kind
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "I/O Error"
	case KindStartupAborted:
		return "Startup Aborted"
	case KindParsingStatus:
		return "Status Parse Error"
	case KindParsingConfig:
		return "Config Parse Error"
	case KindUnexpectedResponse:
		return "Unexpected Response"
	case KindTimeout:
		return "Timeout"
	case KindShortWrite:
		return "Short Write"
	case KindParseInt:
		return "Integer Parse Error"
	case KindUTF8:
		return "UTF-8 Error"
	case KindRecv:
		return "Receive Error"
	case KindUnsolicitedIO:
		return "Unsolicited I/O Error"
	case KindStationRequestChannelClosed:
		return "Station Request Channel Closed"
	case KindStationEventChannelClosed:
		return "Station Event Channel Closed"
	case KindAPRequestChannelClosed:
		return "AP Request Channel Closed"
	case KindAPEventChannelClosed:
		return "AP Event Channel Closed"
	case KindAPBroadcast:
		return "AP Broadcast Error"
	case KindStationBroadcast:
		return "Station Broadcast Error"
	case KindTimeoutOpeningSocket:
		return "Socket Open Timeout"
	case KindPermissionDeniedOpeningSocket:
		return "Socket Permission Denied"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Error is the error type shared by the decoding core and the transport layer.
type Error struct {
	Kind     Kind   // Category of error
	Response string // Complete reply text (parse and unexpected-response errors)
	Socket   string // Control socket path (socket open errors)
	Written  int    // Bytes written (short writes)
	Expected int    // Bytes expected (short writes)
	Err      error  // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("io error: %v", e.Err)
	case KindStartupAborted:
		return "start-up aborted"
	case KindParsingStatus:
		return fmt.Sprintf("error parsing wifi status %v: \n%s", e.Err, e.Response)
	case KindParsingConfig:
		return fmt.Sprintf("error parsing wifi config %v: \n%s", e.Err, e.Response)
	case KindUnexpectedResponse:
		return fmt.Sprintf("unexpected wifi ap response: %s", e.Response)
	case KindTimeout:
		return "timeout waiting for response"
	case KindShortWrite:
		return fmt.Sprintf("did not write all bytes %d/%d", e.Written, e.Expected)
	case KindParseInt:
		return fmt.Sprintf("error parsing int: %v", e.Err)
	case KindUTF8:
		return fmt.Sprintf("utf8 error: %v", e.Err)
	case KindRecv:
		return fmt.Sprintf("recv error: %v", e.Err)
	case KindUnsolicitedIO:
		return fmt.Sprintf("unsolicited socket io error: %v", e.Err)
	case KindStationRequestChannelClosed:
		return "wifictrl station internal request channel unexpectedly closed"
	case KindStationEventChannelClosed:
		return "wifictrl station internal event channel unexpectedly closed"
	case KindAPRequestChannelClosed:
		return "wifictrl ap internal request channel unexpectedly closed"
	case KindAPEventChannelClosed:
		return "wifictrl ap internal event channel unexpectedly closed"
	case KindAPBroadcast:
		return fmt.Sprintf("wifi ap broadcast: %v", e.Err)
	case KindStationBroadcast:
		return fmt.Sprintf("wifi station broadcast: %v", e.Err)
	case KindTimeoutOpeningSocket:
		return fmt.Sprintf("timeout opening socket %s", e.Socket)
	case KindPermissionDeniedOpeningSocket:
		return fmt.Sprintf("permission denied opening socket %s", e.Socket)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
		return e.Kind.String()
	}
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewStatusParseError wraps a decode failure of a STATUS reply
func NewStatusParseError(err error, response string) *Error {
	return &Error{Kind: KindParsingStatus, Err: err, Response: response}
}

// NewConfigParseError wraps a decode failure of a GET_CONFIG reply
func NewConfigParseError(err error, response string) *Error {
	return &Error{Kind: KindParsingConfig, Err: err, Response: response}
}

// NewUnexpectedResponseError reports a reply the caller did not expect
func NewUnexpectedResponseError(response string) *Error {
	return &Error{Kind: KindUnexpectedResponse, Response: response}
}

// NewIOError wraps a socket I/O failure. Timeouts are classified as KindTimeout.
func NewIOError(err error) *Error {
	if os.IsTimeout(err) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindIO, Err: err}
}

// NewUnsolicitedIOError wraps a failure on the event socket
func NewUnsolicitedIOError(err error) *Error {
	return &Error{Kind: KindUnsolicitedIO, Err: err}
}

// NewTimeoutError reports that no reply arrived in time
func NewTimeoutError() *Error {
	return &Error{Kind: KindTimeout}
}

// NewStartupAbortedError reports that the client stopped before it was ready
func NewStartupAbortedError() *Error {
	return &Error{Kind: KindStartupAborted}
}

// NewShortWriteError reports a partially written request
func NewShortWriteError(written, expected int) *Error {
	return &Error{Kind: KindShortWrite, Written: written, Expected: expected}
}

// NewParseIntError wraps an integer conversion failure
func NewParseIntError(err error) *Error {
	return &Error{Kind: KindParseInt, Err: err}
}

// NewUTF8Error wraps a UTF-8 validation failure
func NewUTF8Error(err error) *Error {
	return &Error{Kind: KindUTF8, Err: err}
}

// NewRecvError wraps a failure waiting on a pending request
func NewRecvError(err error) *Error {
	return &Error{Kind: KindRecv, Err: err}
}

// NewChannelClosedError reports a closed internal channel of kind k.
// k must be one of the *ChannelClosed kinds.
func NewChannelClosedError(k Kind) *Error {
	return &Error{Kind: k}
}

// NewBroadcastError wraps a failed event broadcast; ap selects the access point
// or the station event stream.
func NewBroadcastError(ap bool, err error) *Error {
	if ap {
		return &Error{Kind: KindAPBroadcast, Err: err}
	}
	return &Error{Kind: KindStationBroadcast, Err: err}
}

// NewSocketOpenError reports a control socket that could not be opened.
// Permission errors are classified as KindPermissionDeniedOpeningSocket,
// everything else as KindTimeoutOpeningSocket.
func NewSocketOpenError(socket string, err error) *Error {
	if os.IsPermission(err) {
		return &Error{Kind: KindPermissionDeniedOpeningSocket, Socket: socket, Err: err}
	}
	return &Error{Kind: KindTimeoutOpeningSocket, Socket: socket, Err: err}
}

func asError(err error) (*Error, bool) {
	var wErr *Error
	if errors.As(err, &wErr) {
		return wErr, true
	}
	return nil, false
}

// IsParseError checks if an error is a STATUS or GET_CONFIG decode failure
func IsParseError(err error) bool {
	if wErr, ok := asError(err); ok {
		return wErr.Kind == KindParsingStatus || wErr.Kind == KindParsingConfig
	}
	return false
}

// IsTimeout checks if an error is a reply or socket-open timeout
func IsTimeout(err error) bool {
	if wErr, ok := asError(err); ok {
		return wErr.Kind == KindTimeout || wErr.Kind == KindTimeoutOpeningSocket
	}
	return false
}

// IsChannelClosed checks if an error reports a closed internal channel
func IsChannelClosed(err error) bool {
	if wErr, ok := asError(err); ok {
		switch wErr.Kind {
		case KindStationRequestChannelClosed, KindStationEventChannelClosed,
			KindAPRequestChannelClosed, KindAPEventChannelClosed:
			return true
		}
	}
	return false
}

// IsRetryable checks if re-issuing the request could succeed. Parse errors are
// never retryable: the same reply decodes the same way.
func IsRetryable(err error) bool {
	wErr, ok := asError(err)
	if !ok {
		return false
	}
	switch wErr.Kind {
	case KindIO, KindTimeout, KindShortWrite, KindTimeoutOpeningSocket, KindUnsolicitedIO:
		return true
	default:
		return false
	}
}

// ParseFailure extracts the core decode error and the offending reply from a
// parse error.
func ParseFailure(err error) (*ctrlproto.ConfigError, string, bool) {
	wErr, ok := asError(err)
	if !ok || (wErr.Kind != KindParsingStatus && wErr.Kind != KindParsingConfig) {
		return nil, "", false
	}
	var cfgErr *ctrlproto.ConfigError
	if !errors.As(wErr.Err, &cfgErr) {
		return nil, wErr.Response, false
	}
	return cfgErr, wErr.Response, true
}

// GetTroubleshootingHint returns user-facing advice for an error. Bare core
// decode errors get the same advice as wrapped ones.
func GetTroubleshootingHint(err error) []string {
	cfgErr, _, ok := ParseFailure(err)
	if !ok {
		ok = errors.As(err, &cfgErr)
	}
	if ok {
		switch cfgErr.Kind {
		case ctrlproto.KindMissingDelimiter:
			return []string{
				"A reply line has no '=' separator",
				"Check that the capture contains only the daemon reply (no prompt or 'OK'/'FAIL' lines)",
			}
		case ctrlproto.KindInvalidEscape, ctrlproto.KindIncompleteEscape, ctrlproto.KindNonUTF8Escape:
			return []string{
				"A value contains a malformed backslash escape",
				"Check that the reply was captured byte-for-byte and not re-quoted by a shell",
			}
		case ctrlproto.KindDecode:
			hints := []string{fmt.Sprintf("Field %q could not be decoded", cfgErr.Field)}
			if errors.Is(cfgErr, ctrlproto.ErrMissingField) {
				hints = append(hints, "The daemon may be too old or the request returned a different reply type")
			}
			return hints
		}
	}

	wErr, ok := asError(err)
	if !ok {
		return nil
	}
	switch wErr.Kind {
	case KindPermissionDeniedOpeningSocket:
		return []string{
			"The control socket is not accessible",
			"Run as a user in the daemon's ctrl_interface_group",
		}
	case KindTimeout, KindTimeoutOpeningSocket:
		return []string{
			"The daemon did not respond in time",
			"Check that the daemon is running and the interface is up",
		}
	}
	return nil
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	wErr, ok := asError(err)
	if !ok {
		return err.Error()
	}
	if cfgErr, _, ok := ParseFailure(err); ok {
		var b strings.Builder
		b.WriteString(wErr.Kind.String())
		b.WriteString(": ")
		b.WriteString(cfgErr.Error())
		return b.String()
	}
	if wErr.Kind == KindParsingStatus || wErr.Kind == KindParsingConfig {
		return fmt.Sprintf("%s: %v", wErr.Kind, wErr.Err)
	}
	return wErr.Error()
}
