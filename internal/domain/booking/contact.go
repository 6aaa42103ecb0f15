package booking

import "strings"

type ContactInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c ContactInfo) Normalize() ContactInfo {
	return ContactInfo{
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Email:     strings.TrimSpace(c.Email),
		Phone:     strings.TrimSpace(c.Phone),
	}
}

// FirstMissing names the first blank field in form order, or "" when complete.
func (c ContactInfo) FirstMissing() string {
	n := c.Normalize()
	switch {
	case n.FirstName == "":
		return "first_name"
	case n.LastName == "":
		return "last_name"
	case n.Email == "":
		return "email"
	case n.Phone == "":
		return "phone"
	default:
		return ""
	}
}

func (c ContactInfo) IsComplete() bool {
	return c.FirstMissing() == ""
}
