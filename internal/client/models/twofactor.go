package models

// SessionChallenge is the in-memory handoff between a password login that
// requires a second factor and the verification step. It must never be
// written to durable storage; a process restart invalidates it and the flow
// restarts at login.
type SessionChallenge struct {
	SessionToken string
	Email        string
	// Role is a client-side routing hint for the screen to return to after
	// verification. It is not verified by the server at this step.
	Role Role
}

// Zero reports whether the challenge is missing or was never produced by a
// login call.
func (c *SessionChallenge) Zero() bool {
	return c == nil || c.SessionToken == ""
}

// TOTPSetup is the pending enrollment material returned by the setup
// endpoint. Ephemeral: discarded on cancel or on successful confirmation.
type TOTPSetup struct {
	Secret string `json:"secret"`
	// QRCodePNG is a base64-encoded PNG of the provisioning QR code.
	QRCodePNG  string `json:"qr_code"`
	OTPAuthURL string `json:"otpauth_url"`
}
