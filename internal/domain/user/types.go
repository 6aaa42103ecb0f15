package user

import "time"

// Waiver records whether and when the user signed the safety waiver.
type Waiver struct {
	signed   bool
	signedAt *time.Time
}

func UnsignedWaiver() Waiver {
	return Waiver{}
}

func SignedWaiver(at time.Time) Waiver {
	return Waiver{signed: true, signedAt: &at}
}

func (w Waiver) Signed() bool { return w.signed }

func (w Waiver) SignedAt() *time.Time {
	if w.signedAt == nil {
		return nil
	}
	t := *w.signedAt
	return &t
}
