// Package mail provides email sending for the trip planner API.
//
// Two transports are available: Client sends through the Resend API and is
// used in production; LogSender writes the rendered message to the log and is
// used in development and tests, where no real email should leave the process.
// Both return a message ID usable for diagnostics.
package mail

// Message is a fully rendered email ready to hand to a transport.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	HTML      string
}
